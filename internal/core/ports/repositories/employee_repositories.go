package repositories

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// EmployeeReader defines read operations for roster data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves multiple employees keyed by ID.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error)

	// ListEmployees retrieves the full roster.
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)

	// ListActiveEmployees retrieves only employees with ACTIVE status, the
	// population eligible for a payroll run.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for roster data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all roster repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
