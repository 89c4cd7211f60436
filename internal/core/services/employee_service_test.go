package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/core/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

func TestCreateEmployee_NormalizesFormattedSalary(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := services.NewEmployeeService(repo)
	ctx := context.Background()

	repo.On("SaveEmployee", ctx, mock.Anything).Return(nil)

	employee, err := service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:   "Adaeze Obi",
		Salary: "₦1,250,000.50",
	}, "user-1")

	assert.NoError(t, err)
	assert.True(t, employee.MonthlySalary.Equal(decimal.RequireFromString("1250000.50")), "got %s", employee.MonthlySalary)
	assert.Equal(t, "₦1,250,000.50", employee.SalaryRaw)
	assert.Equal(t, domain.EmployeeActive, employee.Status)
}

func TestCreateEmployee_UnparseableSalaryDegradesToZero(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := services.NewEmployeeService(repo)
	ctx := context.Background()

	repo.On("SaveEmployee", ctx, mock.Anything).Return(nil)

	employee, err := service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:   "Bola Ade",
		Salary: "ask HR",
	}, "user-1")

	assert.NoError(t, err)
	assert.True(t, employee.MonthlySalary.IsZero())
	assert.Equal(t, "ask HR", employee.SalaryRaw)
}

func TestUpdateEmployee_AppliesPartialChanges(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := services.NewEmployeeService(repo)
	ctx := context.Background()

	repo.On("FindEmployeeByID", ctx, "emp-1").Return(&domain.Employee{
		EmployeeID:    "emp-1",
		Name:          "Adaeze Obi",
		MonthlySalary: decimal.RequireFromString("1000000"),
		SalaryRaw:     "1000000",
		Status:        domain.EmployeeActive,
	}, nil)

	var updated domain.Employee
	repo.On("UpdateEmployee", ctx, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Employee) }).
		Return(nil)

	status := "ON_LEAVE"
	_, err := service.UpdateEmployee(ctx, "emp-1", dto.UpdateEmployeeRequest{Status: &status}, "user-2")

	assert.NoError(t, err)
	assert.Equal(t, domain.EmployeeOnLeave, updated.Status)
	assert.Equal(t, "Adaeze Obi", updated.Name)
	assert.Equal(t, "user-2", updated.LastUpdatedBy)
}
