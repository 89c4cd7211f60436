package models

import (
	"github.com/shopspring/decimal"
)

// EmployeeStatus indicates whether an employee is eligible for payroll.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeOnLeave  EmployeeStatus = "ON_LEAVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// Employee represents a payroll roster row. MonthlySalary is the parsed,
// canonical figure; SalaryRaw preserves the value as originally captured.
type Employee struct {
	EmployeeID    string          `db:"employee_id"`
	Name          string          `db:"name"`
	MonthlySalary decimal.Decimal `db:"monthly_salary"`
	SalaryRaw     string          `db:"salary_raw"`
	BankName      string          `db:"bank_name"`
	BankAccount   string          `db:"bank_account"`
	Status        EmployeeStatus  `db:"status"`
	AuditFields
}
