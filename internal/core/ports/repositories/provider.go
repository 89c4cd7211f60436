package repositories

// RepositoryProvider bundles the concrete repository facades handed to the
// service container at startup.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	PayrollRepo  PayrollRepositoryWithTx
	EmployeeRepo EmployeeRepositoryFacade
	UserRepo     UserRepositoryFacade
}
