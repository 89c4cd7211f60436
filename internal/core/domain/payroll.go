package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus is the lifecycle state of a payroll run.
// DRAFT runs may be deleted and rebuilt; PROCESSED is terminal.
type RunStatus string

const (
	RunDraft     RunStatus = "DRAFT"
	RunProcessed RunStatus = "PROCESSED"
)

// PayrollRun is one payroll period for the whole active roster.
// At most one non-draft run may exist per (month, year).
type PayrollRun struct {
	RunID         string          `json:"runID"` // Primary key (UUID)
	Month         int             `json:"month"` // 1..12
	Year          int             `json:"year"`
	Status        RunStatus       `json:"status"`
	TotalGross    decimal.Decimal `json:"totalGross"`
	TotalPaye     decimal.Decimal `json:"totalPaye"`
	TotalPension  decimal.Decimal `json:"totalPension"`
	TotalNhf      decimal.Decimal `json:"totalNhf"`
	TotalNet      decimal.Decimal `json:"totalNet"`
	EmployeeCount int             `json:"employeeCount"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
	Lines         []PayrollLine   `json:"lines,omitempty"`
	AuditFields
}

// PayrollLine is a point-in-time payslip snapshot for one employee within a
// run. Lines are never recalculated after creation; run deletion cascades.
type PayrollLine struct {
	LineID       string          `json:"lineID"` // Primary key (UUID)
	RunID        string          `json:"runID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"` // Snapshot at run time
	BasicSalary  decimal.Decimal `json:"basicSalary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Bonus        decimal.Decimal `json:"bonus"`
	CashBenefits decimal.Decimal `json:"cashBenefits"`
	GrossPay     decimal.Decimal `json:"grossPay"`
	Cra          decimal.Decimal `json:"cra"` // Monthly consolidated relief applied
	Taxable      decimal.Decimal `json:"taxable"`
	Paye         decimal.Decimal `json:"paye"`
	Pension      decimal.Decimal `json:"pension"`
	Nhf          decimal.Decimal `json:"nhf"`
	NetPay       decimal.Decimal `json:"netPay"`
	AuditFields
}
