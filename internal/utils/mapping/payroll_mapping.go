package mapping

import (
	"database/sql"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/models"
)

// ToModelPayrollRun converts a domain PayrollRun to a model PayrollRun
func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	m := models.PayrollRun{
		RunID:         d.RunID,
		Month:         d.Month,
		Year:          d.Year,
		Status:        models.RunStatus(d.Status),
		TotalGross:    d.TotalGross,
		TotalPaye:     d.TotalPaye,
		TotalPension:  d.TotalPension,
		TotalNhf:      d.TotalNhf,
		TotalNet:      d.TotalNet,
		EmployeeCount: d.EmployeeCount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.ProcessedAt != nil {
		m.ProcessedAt = sql.NullTime{Time: *d.ProcessedAt, Valid: true}
	}
	return m
}

// ToDomainPayrollRun converts a model PayrollRun to a domain PayrollRun
func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	d := domain.PayrollRun{
		RunID:         m.RunID,
		Month:         m.Month,
		Year:          m.Year,
		Status:        domain.RunStatus(m.Status),
		TotalGross:    m.TotalGross,
		TotalPaye:     m.TotalPaye,
		TotalPension:  m.TotalPension,
		TotalNhf:      m.TotalNhf,
		TotalNet:      m.TotalNet,
		EmployeeCount: m.EmployeeCount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.ProcessedAt.Valid {
		t := m.ProcessedAt.Time
		d.ProcessedAt = &t
	}
	return d
}

// ToDomainPayrollRunSlice converts a slice of model PayrollRuns to domain
func ToDomainPayrollRunSlice(ms []models.PayrollRun) []domain.PayrollRun {
	ds := make([]domain.PayrollRun, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayrollRun(m)
	}
	return ds
}

// ToModelPayrollLine converts a domain PayrollLine to a model PayrollLine
func ToModelPayrollLine(d domain.PayrollLine) models.PayrollLine {
	return models.PayrollLine{
		LineID:       d.LineID,
		RunID:        d.RunID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		BasicSalary:  d.BasicSalary,
		Allowances:   d.Allowances,
		Bonus:        d.Bonus,
		CashBenefits: d.CashBenefits,
		GrossPay:     d.GrossPay,
		Cra:          d.Cra,
		Taxable:      d.Taxable,
		Paye:         d.Paye,
		Pension:      d.Pension,
		Nhf:          d.Nhf,
		NetPay:       d.NetPay,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollLine converts a model PayrollLine to a domain PayrollLine
func ToDomainPayrollLine(m models.PayrollLine) domain.PayrollLine {
	return domain.PayrollLine{
		LineID:       m.LineID,
		RunID:        m.RunID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		BasicSalary:  m.BasicSalary,
		Allowances:   m.Allowances,
		Bonus:        m.Bonus,
		CashBenefits: m.CashBenefits,
		GrossPay:     m.GrossPay,
		Cra:          m.Cra,
		Taxable:      m.Taxable,
		Paye:         m.Paye,
		Pension:      m.Pension,
		Nhf:          m.Nhf,
		NetPay:       m.NetPay,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayrollLineSlice converts a slice of model PayrollLines to domain
func ToDomainPayrollLineSlice(ms []models.PayrollLine) []domain.PayrollLine {
	ds := make([]domain.PayrollLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayrollLine(m)
	}
	return ds
}
