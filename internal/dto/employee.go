package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// CreateEmployeeRequest defines the input for adding an employee to the
// roster. Salary is accepted as captured, formatting and all; it is
// normalized before persistence and the raw value kept alongside.
type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	BankName    string `json:"bankName"`
	BankAccount string `json:"bankAccount"`
	Status      string `json:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE INACTIVE"`
}

// UpdateEmployeeRequest defines the editable fields of an employee.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	Salary      *string `json:"salary"`
	BankName    *string `json:"bankName"`
	BankAccount *string `json:"bankAccount"`
	Status      *string `json:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE INACTIVE"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string          `json:"employeeID"`
	Name          string          `json:"name"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	SalaryRaw     string          `json:"salaryRaw"`
	BankName      string          `json:"bankName"`
	BankAccount   string          `json:"bankAccount"`
	Status        string          `json:"status"`
}

// ListEmployeesResponse wraps a page of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain employee to its DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		MonthlySalary: e.MonthlySalary,
		SalaryRaw:     e.SalaryRaw,
		BankName:      e.BankName,
		BankAccount:   e.BankAccount,
		Status:        string(e.Status),
	}
}
