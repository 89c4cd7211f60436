package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/middleware"
	"github.com/zenitherp/payroll_backend/internal/utils/money"
)

// employeeService provides roster operations.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// normalizeSalary parses a salary figure as captured, currency symbols and
// grouping included. An unparseable figure degrades to zero rather than
// rejecting the record; rosters imported from spreadsheets carry these and the
// record is still worth keeping for correction.
func normalizeSalary(ctx context.Context, raw string) decimal.Decimal {
	amount, ok := money.ParseAmount(raw)
	if !ok {
		middleware.GetLoggerFromCtx(ctx).Warn("could not parse salary, storing zero",
			slog.String("salary_raw", raw),
		)
		return decimal.Zero
	}
	return amount
}

// CreateEmployee adds an employee to the roster.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	now := time.Now().UTC()

	status := domain.EmployeeActive
	if req.Status != "" {
		status = domain.EmployeeStatus(req.Status)
	}

	employee := domain.Employee{
		EmployeeID:    uuid.NewString(),
		Name:          req.Name,
		MonthlySalary: normalizeSalary(ctx, req.Salary),
		SalaryRaw:     req.Salary,
		BankName:      req.BankName,
		BankAccount:   req.BankAccount,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetEmployeeByID retrieves an employee.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

// ListEmployees retrieves a page of the roster.
func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx, limit, offset)
}

// UpdateEmployee applies the provided fields to an employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Salary != nil {
		employee.MonthlySalary = normalizeSalary(ctx, *req.Salary)
		employee.SalaryRaw = *req.Salary
	}
	if req.BankName != nil {
		employee.BankName = *req.BankName
	}
	if req.BankAccount != nil {
		employee.BankAccount = *req.BankAccount
	}
	if req.Status != nil {
		employee.Status = domain.EmployeeStatus(*req.Status)
	}

	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, err
	}
	return employee, nil
}
