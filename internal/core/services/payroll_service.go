package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/middleware"
	"github.com/zenitherp/payroll_backend/internal/utils/accounting"
	"github.com/zenitherp/payroll_backend/internal/utils/paye"
)

// payrollService provides the payroll run lifecycle: build a draft from the
// active roster, authorize it into the ledger, export the bank schedule.
type payrollService struct {
	payrollRepo  portsrepo.PayrollRepositoryWithTx
	employeeRepo portsrepo.EmployeeRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	journalRepo  portsrepo.JournalRepositoryFacade
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(
	payrollRepo portsrepo.PayrollRepositoryWithTx,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
) portssvc.PayrollSvcFacade {
	return &payrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// CreateRun builds and persists a draft run for the requested period, one
// payslip line per active employee. An existing draft for the same period is
// replaced wholesale; a processed run makes the period immutable.
func (s *payrollService) CreateRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.payrollRepo.FindRunByPeriod(ctx, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.RunProcessed {
			return nil, apperrors.ErrRunFinalized
		}
		// Drafts are cheap; rebuild from scratch instead of diffing lines.
		if err := s.payrollRepo.DeleteRun(ctx, existing.RunID); err != nil {
			return nil, err
		}
		logger.Info("replaced draft payroll run",
			slog.String("run_id", existing.RunID),
			slog.Int("month", req.Month),
			slog.Int("year", req.Year),
		)
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNoEligibleEmployees
	}

	opts := paye.RunOptions{
		Include13thMonth:   req.Include13thMonth,
		CashBenefitPercent: decimal.NewFromFloat(req.CashBenefitPercent),
	}

	now := time.Now().UTC()
	run := domain.PayrollRun{
		RunID:         uuid.NewString(),
		Month:         req.Month,
		Year:          req.Year,
		Status:        domain.RunDraft,
		TotalGross:    decimal.Zero,
		TotalPaye:     decimal.Zero,
		TotalPension:  decimal.Zero,
		TotalNhf:      decimal.Zero,
		TotalNet:      decimal.Zero,
		EmployeeCount: len(employees),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	lines := make([]domain.PayrollLine, len(employees))
	for i, employee := range employees {
		line := paye.ComputeLine(employee.MonthlySalary, opts)
		line.LineID = uuid.NewString()
		line.RunID = run.RunID
		line.EmployeeID = employee.EmployeeID
		line.EmployeeName = employee.Name
		lines[i] = line

		run.TotalGross = run.TotalGross.Add(line.GrossPay)
		run.TotalPaye = run.TotalPaye.Add(line.Paye)
		run.TotalPension = run.TotalPension.Add(line.Pension)
		run.TotalNhf = run.TotalNhf.Add(line.Nhf)
		run.TotalNet = run.TotalNet.Add(line.NetPay)
	}

	if err := s.payrollRepo.SaveRun(ctx, run, lines); err != nil {
		return nil, err
	}

	logger.Info("draft payroll run created",
		slog.String("run_id", run.RunID),
		slog.Int("month", run.Month),
		slog.Int("year", run.Year),
		slog.Int("employees", run.EmployeeCount),
		slog.String("total_net", run.TotalNet.String()),
	)

	run.Lines = lines
	return &run, nil
}

// disbursementLines builds the five-leg journal entry for a run: debit gross
// salaries expense, credit net pay, PAYE, pension and NHF.
func disbursementLines(run *domain.PayrollRun, accounts map[string]domain.Account) []domain.JournalLine {
	leg := func(code string, amount decimal.Decimal) domain.JournalLine {
		return domain.JournalLine{
			LineID:    uuid.NewString(),
			AccountID: accounts[code].AccountID,
			Amount:    amount,
		}
	}
	return []domain.JournalLine{
		leg(domain.CodeSalariesExp, run.TotalGross),
		leg(domain.CodeBankAccount, run.TotalNet.Neg()),
		leg(domain.CodePayePayable, run.TotalPaye.Neg()),
		leg(domain.CodePensionPayable, run.TotalPension.Neg()),
		leg(domain.CodeNhfPayable, run.TotalNhf.Neg()),
	}
}

// AuthorizeRun atomically transitions a draft run to PROCESSED, posting the
// disbursement journal entry and applying account balance deltas. The status
// flip, entry insert and balance updates share one database transaction, so a
// failure at any point leaves the run DRAFT and the ledger untouched.
func (s *payrollService) AuthorizeRun(ctx context.Context, runID string, userID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunDraft {
		return nil, apperrors.ErrInvalidRunState
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, domain.PayrollAccountCodes)
	if err != nil {
		return nil, err
	}
	for _, code := range domain.PayrollAccountCodes {
		account, found := accounts[code]
		if !found {
			return nil, fmt.Errorf("%w: code %s", apperrors.ErrChartIncomplete, code)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
		}
	}

	now := time.Now().UTC()
	lines := disbursementLines(run, accounts)
	if err := accounting.ValidateEntryLines(lines); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   now,
		Description: fmt.Sprintf("Payroll disbursement %02d/%d", run.Month, run.Year),
		Reference:   fmt.Sprintf("PAYROLL-%d-%02d", run.Year, run.Month),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	deltas := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		deltas[line.AccountID] = deltas[line.AccountID].Add(line.Amount)
	}

	tx, err := s.payrollRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.payrollRepo.Rollback(ctx, tx)

	// The guarded status flip is first: a concurrent authorization loses here
	// with ErrInvalidRunState before anything touches the ledger.
	if err := s.payrollRepo.MarkRunProcessedInTx(ctx, tx, runID, now, userID); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntryInTx(ctx, tx, entry, lines); err != nil {
		return nil, err
	}
	if err := s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, userID, now); err != nil {
		return nil, err
	}
	if err := s.payrollRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("payroll run authorized",
		slog.String("run_id", runID),
		slog.String("entry_id", entry.EntryID),
		slog.String("total_gross", run.TotalGross.String()),
		slog.String("total_net", run.TotalNet.String()),
	)

	run.Status = domain.RunProcessed
	run.ProcessedAt = &now
	run.LastUpdatedAt = now
	run.LastUpdatedBy = userID
	return run, nil
}

// DeleteDraftRun removes a draft run and its lines. Processed runs are
// immutable and cannot be deleted.
func (s *payrollService) DeleteDraftRun(ctx context.Context, runID string) error {
	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status != domain.RunDraft {
		return apperrors.ErrInvalidRunState
	}
	return s.payrollRepo.DeleteRun(ctx, runID)
}

// GetRunByID retrieves a run together with its payslip lines.
func (s *payrollService) GetRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	lines, err := s.payrollRepo.FindLinesByRunID(ctx, runID)
	if err != nil {
		return nil, err
	}
	run.Lines = lines

	return run, nil
}

// ListRuns retrieves runs, most recent period first.
func (s *payrollService) ListRuns(ctx context.Context, limit, offset int) ([]domain.PayrollRun, error) {
	return s.payrollRepo.ListRuns(ctx, limit, offset)
}

// BankSchedule builds the payment-instruction listing for a processed run.
// Bank details come from the current roster; payslip figures from the run.
func (s *payrollService) BankSchedule(ctx context.Context, runID string) (*dto.BankScheduleResponse, error) {
	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunProcessed {
		return nil, apperrors.ErrInvalidRunState
	}

	lines, err := s.payrollRepo.FindLinesByRunID(ctx, runID)
	if err != nil {
		return nil, err
	}

	employeeIDs := make([]string, len(lines))
	for i, line := range lines {
		employeeIDs[i] = line.EmployeeID
	}
	employees, err := s.employeeRepo.FindEmployeesByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}

	month := strings.ToUpper(time.Month(run.Month).String()[:3])
	resp := &dto.BankScheduleResponse{
		RunID: run.RunID,
		Month: run.Month,
		Year:  run.Year,
		Rows:  make([]dto.BankScheduleRow, len(lines)),
	}
	for i, line := range lines {
		employee := employees[line.EmployeeID]
		resp.Rows[i] = dto.BankScheduleRow{
			EmployeeName: line.EmployeeName,
			BankName:     employee.BankName,
			BankAccount:  employee.BankAccount,
			NetPay:       line.NetPay,
			Narration:    fmt.Sprintf("SALARY %s-%d %s", month, run.Year, line.EmployeeName),
		}
	}

	return resp, nil
}
