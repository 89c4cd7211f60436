package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	payrollRepo := newPgxPayrollRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		JournalRepo:  journalRepo,
		PayrollRepo:  payrollRepo,
		EmployeeRepo: employeeRepo,
		UserRepo:     userRepo,
	}
}
