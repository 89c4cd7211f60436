package mapping

import (
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		Name:          d.Name,
		MonthlySalary: d.MonthlySalary,
		SalaryRaw:     d.SalaryRaw,
		BankName:      d.BankName,
		BankAccount:   d.BankAccount,
		Status:        models.EmployeeStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:    m.EmployeeID,
		Name:          m.Name,
		MonthlySalary: m.MonthlySalary,
		SalaryRaw:     m.SalaryRaw,
		BankName:      m.BankName,
		BankAccount:   m.BankAccount,
		Status:        domain.EmployeeStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
