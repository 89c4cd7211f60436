package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/core/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	payrollRepo  *MockPayrollRepository
	employeeRepo *MockEmployeeRepository
	accountRepo  *MockAccountRepository
	journalRepo  *MockJournalRepository
	service      portssvc.PayrollSvcFacade
	ctx          context.Context
}

func (s *PayrollServiceTestSuite) SetupTest() {
	s.payrollRepo = new(MockPayrollRepository)
	s.employeeRepo = new(MockEmployeeRepository)
	s.accountRepo = new(MockAccountRepository)
	s.journalRepo = new(MockJournalRepository)
	s.service = services.NewPayrollService(s.payrollRepo, s.employeeRepo, s.accountRepo, s.journalRepo)
	s.ctx = context.Background()
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}

func activeEmployee(id, name, salary string) domain.Employee {
	return domain.Employee{
		EmployeeID:    id,
		Name:          name,
		MonthlySalary: decimal.RequireFromString(salary),
		Status:        domain.EmployeeActive,
	}
}

func payrollChart() map[string]domain.Account {
	mk := func(id, code string, t domain.AccountType) domain.Account {
		return domain.Account{AccountID: id, Code: code, AccountType: t, IsActive: true}
	}
	return map[string]domain.Account{
		domain.CodeSalariesExp:    mk("acc-sal", domain.CodeSalariesExp, domain.Expense),
		domain.CodeBankAccount:    mk("acc-bank", domain.CodeBankAccount, domain.Asset),
		domain.CodePayePayable:    mk("acc-paye", domain.CodePayePayable, domain.Liability),
		domain.CodePensionPayable: mk("acc-pen", domain.CodePensionPayable, domain.Liability),
		domain.CodeNhfPayable:     mk("acc-nhf", domain.CodeNhfPayable, domain.Liability),
	}
}

func draftRun(runID string) *domain.PayrollRun {
	return &domain.PayrollRun{
		RunID:         runID,
		Month:         3,
		Year:          2026,
		Status:        domain.RunDraft,
		TotalGross:    decimal.RequireFromString("1725000"),
		TotalPaye:     decimal.RequireFromString("288533.34"),
		TotalPension:  decimal.RequireFromString("138000"),
		TotalNhf:      decimal.RequireFromString("37500"),
		TotalNet:      decimal.RequireFromString("1260966.66"),
		EmployeeCount: 2,
	}
}

func (s *PayrollServiceTestSuite) TestCreateRun_ComputesTotalsFromActiveRoster() {
	req := dto.CreatePayrollRunRequest{Month: 3, Year: 2026}

	s.payrollRepo.On("FindRunByPeriod", s.ctx, 3, 2026).Return(nil, apperrors.ErrNotFound)
	s.employeeRepo.On("ListActiveEmployees", s.ctx).Return([]domain.Employee{
		activeEmployee("emp-1", "Adaeze Obi", "1000000"),
		activeEmployee("emp-2", "Bola Ade", "500000"),
	}, nil)

	var savedRun domain.PayrollRun
	var savedLines []domain.PayrollLine
	s.payrollRepo.On("SaveRun", s.ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedRun = args.Get(1).(domain.PayrollRun)
			savedLines = args.Get(2).([]domain.PayrollLine)
		}).
		Return(nil)

	run, err := s.service.CreateRun(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.RunDraft, run.Status)
	s.Equal(2, run.EmployeeCount)
	s.Len(savedLines, 2)
	s.Equal(savedRun.RunID, savedLines[0].RunID)

	s.True(run.TotalGross.Equal(decimal.RequireFromString("1725000")), "gross: %s", run.TotalGross)
	s.True(run.TotalPaye.Equal(decimal.RequireFromString("288533.34")), "paye: %s", run.TotalPaye)
	s.True(run.TotalPension.Equal(decimal.RequireFromString("138000")), "pension: %s", run.TotalPension)
	s.True(run.TotalNhf.Equal(decimal.RequireFromString("37500")), "nhf: %s", run.TotalNhf)
	s.True(run.TotalNet.Equal(decimal.RequireFromString("1260966.66")), "net: %s", run.TotalNet)

	// The identity gross = net + paye + pension + nhf must hold on totals too.
	reassembled := run.TotalNet.Add(run.TotalPaye).Add(run.TotalPension).Add(run.TotalNhf)
	s.True(reassembled.Equal(run.TotalGross))

	s.payrollRepo.AssertExpectations(s.T())
}

func (s *PayrollServiceTestSuite) TestCreateRun_NoActiveEmployees() {
	req := dto.CreatePayrollRunRequest{Month: 3, Year: 2026}

	s.payrollRepo.On("FindRunByPeriod", s.ctx, 3, 2026).Return(nil, apperrors.ErrNotFound)
	s.employeeRepo.On("ListActiveEmployees", s.ctx).Return([]domain.Employee{}, nil)

	_, err := s.service.CreateRun(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrNoEligibleEmployees)
	s.payrollRepo.AssertNotCalled(s.T(), "SaveRun", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestCreateRun_ProcessedPeriodIsImmutable() {
	req := dto.CreatePayrollRunRequest{Month: 3, Year: 2026}

	processed := draftRun("run-1")
	processed.Status = domain.RunProcessed
	s.payrollRepo.On("FindRunByPeriod", s.ctx, 3, 2026).Return(processed, nil)

	_, err := s.service.CreateRun(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrRunFinalized)
	s.payrollRepo.AssertNotCalled(s.T(), "DeleteRun", mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestCreateRun_ReplacesExistingDraft() {
	req := dto.CreatePayrollRunRequest{Month: 3, Year: 2026}

	s.payrollRepo.On("FindRunByPeriod", s.ctx, 3, 2026).Return(draftRun("run-old"), nil)
	s.payrollRepo.On("DeleteRun", s.ctx, "run-old").Return(nil)
	s.employeeRepo.On("ListActiveEmployees", s.ctx).Return([]domain.Employee{
		activeEmployee("emp-1", "Adaeze Obi", "1000000"),
	}, nil)
	s.payrollRepo.On("SaveRun", s.ctx, mock.Anything, mock.Anything).Return(nil)

	run, err := s.service.CreateRun(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.NotEqual("run-old", run.RunID)
	s.payrollRepo.AssertExpectations(s.T())
}

func (s *PayrollServiceTestSuite) TestAuthorizeRun_PostsBalancedDisbursement() {
	run := draftRun("run-1")
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(run, nil)
	s.accountRepo.On("FindAccountsByCodes", s.ctx, domain.PayrollAccountCodes).Return(payrollChart(), nil)
	s.payrollRepo.On("Begin", s.ctx).Return(nil, nil)
	s.payrollRepo.On("MarkRunProcessedInTx", s.ctx, mock.Anything, "run-1", mock.Anything, "user-1").Return(nil)

	var postedLines []domain.JournalLine
	var postedEntry domain.JournalEntry
	s.journalRepo.On("SaveEntryInTx", s.ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			postedEntry = args.Get(2).(domain.JournalEntry)
			postedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(nil)

	var appliedDeltas map[string]decimal.Decimal
	s.accountRepo.On("ApplyBalanceDeltasInTx", s.ctx, mock.Anything, mock.Anything, "user-1", mock.Anything).
		Run(func(args mock.Arguments) {
			appliedDeltas = args.Get(2).(map[string]decimal.Decimal)
		}).
		Return(nil)
	s.payrollRepo.On("Commit", s.ctx, mock.Anything).Return(nil)
	s.payrollRepo.On("Rollback", s.ctx, mock.Anything).Return(nil)

	result, err := s.service.AuthorizeRun(s.ctx, "run-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.RunProcessed, result.Status)
	s.NotNil(result.ProcessedAt)

	s.Equal("PAYROLL-2026-03", postedEntry.Reference)
	s.Require().Len(postedLines, 5)
	s.True(domain.LineSum(postedLines).IsZero(), "disbursement must balance")

	s.Len(appliedDeltas, 5)
	s.True(appliedDeltas["acc-sal"].Equal(run.TotalGross))
	s.True(appliedDeltas["acc-bank"].Equal(run.TotalNet.Neg()))
	s.True(appliedDeltas["acc-paye"].Equal(run.TotalPaye.Neg()))
	s.True(appliedDeltas["acc-pen"].Equal(run.TotalPension.Neg()))
	s.True(appliedDeltas["acc-nhf"].Equal(run.TotalNhf.Neg()))

	s.payrollRepo.AssertExpectations(s.T())
	s.journalRepo.AssertExpectations(s.T())
	s.accountRepo.AssertExpectations(s.T())
}

func (s *PayrollServiceTestSuite) TestAuthorizeRun_RejectsNonDraft() {
	run := draftRun("run-1")
	run.Status = domain.RunProcessed
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(run, nil)

	_, err := s.service.AuthorizeRun(s.ctx, "run-1", "user-1")

	s.ErrorIs(err, apperrors.ErrInvalidRunState)
	s.payrollRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *PayrollServiceTestSuite) TestAuthorizeRun_IncompleteChart() {
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(draftRun("run-1"), nil)

	chart := payrollChart()
	delete(chart, domain.CodeNhfPayable)
	s.accountRepo.On("FindAccountsByCodes", s.ctx, domain.PayrollAccountCodes).Return(chart, nil)

	_, err := s.service.AuthorizeRun(s.ctx, "run-1", "user-1")

	s.ErrorIs(err, apperrors.ErrChartIncomplete)
	s.payrollRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *PayrollServiceTestSuite) TestAuthorizeRun_LosesGuardedUpdateRace() {
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(draftRun("run-1"), nil)
	s.accountRepo.On("FindAccountsByCodes", s.ctx, domain.PayrollAccountCodes).Return(payrollChart(), nil)
	s.payrollRepo.On("Begin", s.ctx).Return(nil, nil)
	// A concurrent authorization already flipped the status; the guarded
	// update affects zero rows.
	s.payrollRepo.On("MarkRunProcessedInTx", s.ctx, mock.Anything, "run-1", mock.Anything, "user-1").
		Return(apperrors.ErrInvalidRunState)
	s.payrollRepo.On("Rollback", s.ctx, mock.Anything).Return(nil)

	_, err := s.service.AuthorizeRun(s.ctx, "run-1", "user-1")

	s.ErrorIs(err, apperrors.ErrInvalidRunState)
	s.journalRepo.AssertNotCalled(s.T(), "SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.payrollRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestDeleteDraftRun_RejectsProcessed() {
	run := draftRun("run-1")
	run.Status = domain.RunProcessed
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(run, nil)

	err := s.service.DeleteDraftRun(s.ctx, "run-1")

	s.ErrorIs(err, apperrors.ErrInvalidRunState)
	s.payrollRepo.AssertNotCalled(s.T(), "DeleteRun", mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestBankSchedule_RequiresProcessedRun() {
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(draftRun("run-1"), nil)

	_, err := s.service.BankSchedule(s.ctx, "run-1")

	s.ErrorIs(err, apperrors.ErrInvalidRunState)
}

func (s *PayrollServiceTestSuite) TestBankSchedule_BuildsPaymentRows() {
	run := draftRun("run-1")
	now := time.Now()
	run.Status = domain.RunProcessed
	run.ProcessedAt = &now
	s.payrollRepo.On("FindRunByID", s.ctx, "run-1").Return(run, nil)
	s.payrollRepo.On("FindLinesByRunID", s.ctx, "run-1").Return([]domain.PayrollLine{
		{LineID: "line-1", EmployeeID: "emp-1", EmployeeName: "Adaeze Obi", NetPay: decimal.RequireFromString("833533.33")},
	}, nil)
	s.employeeRepo.On("FindEmployeesByIDs", s.ctx, []string{"emp-1"}).Return(map[string]domain.Employee{
		"emp-1": {EmployeeID: "emp-1", Name: "Adaeze Obi", BankName: "Zenith Bank", BankAccount: "0123456789"},
	}, nil)

	schedule, err := s.service.BankSchedule(s.ctx, "run-1")

	s.Require().NoError(err)
	s.Require().Len(schedule.Rows, 1)
	row := schedule.Rows[0]
	s.Equal("Zenith Bank", row.BankName)
	s.Equal("0123456789", row.BankAccount)
	s.True(row.NetPay.Equal(decimal.RequireFromString("833533.33")))
	s.Equal("SALARY MAR-2026 Adaeze Obi", row.Narration)
}

func TestPayrollService_GetRunByID_AttachesLines(t *testing.T) {
	payrollRepo := new(MockPayrollRepository)
	service := services.NewPayrollService(payrollRepo, new(MockEmployeeRepository), new(MockAccountRepository), new(MockJournalRepository))
	ctx := context.Background()

	payrollRepo.On("FindRunByID", ctx, "run-1").Return(draftRun("run-1"), nil)
	payrollRepo.On("FindLinesByRunID", ctx, "run-1").Return([]domain.PayrollLine{
		{LineID: "line-1", RunID: "run-1"},
		{LineID: "line-2", RunID: "run-1"},
	}, nil)

	run, err := service.GetRunByID(ctx, "run-1")

	assert.NoError(t, err)
	assert.Len(t, run.Lines, 2)
}
