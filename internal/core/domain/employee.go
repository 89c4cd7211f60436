package domain

import "github.com/shopspring/decimal"

// EmployeeStatus is the roster status of an employee.
// Only active employees are included in a payroll run.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeOnLeave  EmployeeStatus = "ON_LEAVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// Employee is the roster record consumed by the payroll run builder.
// MonthlySalary is already normalized to a decimal at the repository
// boundary; the raw captured string (which may carry currency symbols and
// separators) is retained in SalaryRaw for display.
type Employee struct {
	EmployeeID    string          `json:"employeeID"` // Primary key (UUID)
	Name          string          `json:"name"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	SalaryRaw     string          `json:"salaryRaw"`
	BankName      string          `json:"bankName"`
	BankAccount   string          `json:"bankAccount"`
	Status        EmployeeStatus  `json:"status"`
	AuditFields
}
