package services

import (
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.JournalRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.EmployeeRepo, repos.AccountRepo, repos.JournalRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
