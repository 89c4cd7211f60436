package services

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// EmployeeSvcFacade defines roster operations.
type EmployeeSvcFacade interface {
	// CreateEmployee adds an employee to the roster.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a page of the roster.
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)

	// UpdateEmployee updates an employee's details.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)
}
