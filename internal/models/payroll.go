package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// RunStatus is the lifecycle state of a payroll run.
type RunStatus string

const (
	RunDraft     RunStatus = "DRAFT"
	RunProcessed RunStatus = "PROCESSED"
)

// PayrollRun represents one payroll period. A (month, year) pair is unique.
type PayrollRun struct {
	RunID         string          `db:"run_id"`
	Month         int             `db:"month"`
	Year          int             `db:"year"`
	Status        RunStatus       `db:"status"`
	TotalGross    decimal.Decimal `db:"total_gross"`
	TotalPaye     decimal.Decimal `db:"total_paye"`
	TotalPension  decimal.Decimal `db:"total_pension"`
	TotalNhf      decimal.Decimal `db:"total_nhf"`
	TotalNet      decimal.Decimal `db:"total_net"`
	EmployeeCount int             `db:"employee_count"`
	ProcessedAt   sql.NullTime    `db:"processed_at"`
	AuditFields
}

// PayrollLine is one employee's computed payslip within a run.
// EmployeeName is denormalized so processed runs survive roster edits.
type PayrollLine struct {
	LineID       string          `db:"line_id"`
	RunID        string          `db:"run_id"`
	EmployeeID   string          `db:"employee_id"`
	EmployeeName string          `db:"employee_name"`
	BasicSalary  decimal.Decimal `db:"basic_salary"`
	Allowances   decimal.Decimal `db:"allowances"`
	Bonus        decimal.Decimal `db:"bonus"`
	CashBenefits decimal.Decimal `db:"cash_benefits"`
	GrossPay     decimal.Decimal `db:"gross_pay"`
	Cra          decimal.Decimal `db:"cra"`
	Taxable      decimal.Decimal `db:"taxable"`
	Paye         decimal.Decimal `db:"paye"`
	Pension      decimal.Decimal `db:"pension"`
	Nhf          decimal.Decimal `db:"nhf"`
	NetPay       decimal.Decimal `db:"net_pay"`
	AuditFields
}
