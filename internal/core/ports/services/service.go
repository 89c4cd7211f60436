package services

// ServiceContainer holds all services used by the handlers.
type ServiceContainer struct {
	Payroll  PayrollSvcFacade
	Journal  JournalSvcFacade
	Account  AccountSvcFacade
	Employee EmployeeSvcFacade
	User     UserSvcFacade
	Token    TokenSvcFacade
}
