package services

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll runs.
type PayrollReaderSvc interface {
	// GetRunByID retrieves a run together with its payslip lines.
	GetRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// ListRuns retrieves runs, most recent period first.
	ListRuns(ctx context.Context, limit, offset int) ([]domain.PayrollRun, error)

	// BankSchedule builds the payment-instruction listing for a processed run.
	BankSchedule(ctx context.Context, runID string) (*dto.BankScheduleResponse, error)
}

// PayrollWriterSvc defines the payroll run lifecycle operations.
type PayrollWriterSvc interface {
	// CreateRun builds and persists a draft run for the requested period,
	// one payslip line per active employee. An existing draft for the same
	// period is replaced; a processed run makes the period immutable.
	CreateRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error)

	// AuthorizeRun atomically transitions a draft run to PROCESSED, posting
	// the disbursement journal entry and applying account balance deltas.
	AuthorizeRun(ctx context.Context, runID string, userID string) (*domain.PayrollRun, error)

	// DeleteDraftRun removes a draft run and its lines.
	DeleteDraftRun(ctx context.Context, runID string) error
}

// PayrollSvcFacade combines all payroll service interfaces.
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
