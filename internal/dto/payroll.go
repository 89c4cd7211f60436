package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// CreatePayrollRunRequest defines the input for building a payroll run.
type CreatePayrollRunRequest struct {
	Month              int     `json:"month" binding:"required,min=1,max=12"`
	Year               int     `json:"year" binding:"required,min=2000,max=2100"`
	Include13thMonth   bool    `json:"include13thMonth"`
	CashBenefitPercent float64 `json:"cashBenefitPercent" binding:"gte=0,lte=100"`
}

// PayrollLineResponse is one payslip row of a run.
type PayrollLineResponse struct {
	LineID       string          `json:"lineID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	BasicSalary  decimal.Decimal `json:"basicSalary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Bonus        decimal.Decimal `json:"bonus"`
	CashBenefits decimal.Decimal `json:"cashBenefits"`
	GrossPay     decimal.Decimal `json:"grossPay"`
	Cra          decimal.Decimal `json:"cra"`
	Taxable      decimal.Decimal `json:"taxable"`
	Paye         decimal.Decimal `json:"paye"`
	Pension      decimal.Decimal `json:"pension"`
	Nhf          decimal.Decimal `json:"nhf"`
	NetPay       decimal.Decimal `json:"netPay"`
}

// PayrollRunResponse defines the data returned for a payroll run.
type PayrollRunResponse struct {
	RunID         string                `json:"runID"`
	Month         int                   `json:"month"`
	Year          int                   `json:"year"`
	Status        string                `json:"status"`
	TotalGross    decimal.Decimal       `json:"totalGross"`
	TotalPaye     decimal.Decimal       `json:"totalPaye"`
	TotalPension  decimal.Decimal       `json:"totalPension"`
	TotalNhf      decimal.Decimal       `json:"totalNhf"`
	TotalNet      decimal.Decimal       `json:"totalNet"`
	EmployeeCount int                   `json:"employeeCount"`
	ProcessedAt   *time.Time            `json:"processedAt,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	Lines         []PayrollLineResponse `json:"lines,omitempty"`
}

// ListPayrollRunsResponse wraps a page of runs.
type ListPayrollRunsResponse struct {
	Runs []PayrollRunResponse `json:"runs"`
}

// BankScheduleRow is one payment instruction of the bank schedule export.
type BankScheduleRow struct {
	EmployeeName string          `json:"employeeName"`
	BankName     string          `json:"bankName"`
	BankAccount  string          `json:"bankAccount"`
	NetPay       decimal.Decimal `json:"netPay"`
	Narration    string          `json:"narration"`
}

// BankScheduleResponse is the payment-instruction listing for a processed run.
type BankScheduleResponse struct {
	RunID string            `json:"runID"`
	Month int               `json:"month"`
	Year  int               `json:"year"`
	Rows  []BankScheduleRow `json:"rows"`
}

// ToPayrollLineResponse converts a domain payroll line to its DTO.
func ToPayrollLineResponse(l *domain.PayrollLine) PayrollLineResponse {
	return PayrollLineResponse{
		LineID:       l.LineID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		BasicSalary:  l.BasicSalary,
		Allowances:   l.Allowances,
		Bonus:        l.Bonus,
		CashBenefits: l.CashBenefits,
		GrossPay:     l.GrossPay,
		Cra:          l.Cra,
		Taxable:      l.Taxable,
		Paye:         l.Paye,
		Pension:      l.Pension,
		Nhf:          l.Nhf,
		NetPay:       l.NetPay,
	}
}

// ToPayrollRunResponse converts a domain run (with optional lines) to its DTO.
func ToPayrollRunResponse(r *domain.PayrollRun) PayrollRunResponse {
	resp := PayrollRunResponse{
		RunID:         r.RunID,
		Month:         r.Month,
		Year:          r.Year,
		Status:        string(r.Status),
		TotalGross:    r.TotalGross,
		TotalPaye:     r.TotalPaye,
		TotalPension:  r.TotalPension,
		TotalNhf:      r.TotalNhf,
		TotalNet:      r.TotalNet,
		EmployeeCount: r.EmployeeCount,
		ProcessedAt:   r.ProcessedAt,
		CreatedAt:     r.CreatedAt,
	}
	if len(r.Lines) > 0 {
		resp.Lines = make([]PayrollLineResponse, len(r.Lines))
		for i := range r.Lines {
			resp.Lines[i] = ToPayrollLineResponse(&r.Lines[i])
		}
	}
	return resp
}
