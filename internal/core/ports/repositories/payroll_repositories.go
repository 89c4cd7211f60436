package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// PayrollReader defines read operations for payroll run data.
type PayrollReader interface {
	// FindRunByID retrieves a run by its identifier (without lines).
	FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// FindRunByPeriod retrieves the run for a (month, year) period, if any.
	// There is at most one thanks to the unique period index.
	FindRunByPeriod(ctx context.Context, month, year int) (*domain.PayrollRun, error)

	// FindLinesByRunID retrieves all payslip lines of a run.
	FindLinesByRunID(ctx context.Context, runID string) ([]domain.PayrollLine, error)

	// ListRuns retrieves runs ordered by period, most recent first.
	ListRuns(ctx context.Context, limit int, offset int) ([]domain.PayrollRun, error)
}

// PayrollWriter defines write operations for payroll run data.
type PayrollWriter interface {
	// SaveRun persists a run together with all of its lines in one database
	// transaction it owns; either everything lands or nothing does.
	SaveRun(ctx context.Context, run domain.PayrollRun, lines []domain.PayrollLine) error

	// DeleteRun removes a run; its lines cascade.
	DeleteRun(ctx context.Context, runID string) error

	// MarkRunProcessedInTx flips a run from DRAFT to PROCESSED within a
	// caller-owned transaction. The update is guarded on the current status;
	// if the run is no longer DRAFT it returns apperrors.ErrInvalidRunState,
	// which is how a second concurrent authorization loses the race.
	MarkRunProcessedInTx(ctx context.Context, tx pgx.Tx, runID string, processedAt time.Time, userID string) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces.
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}

// PayrollRepositoryWithTx extends the facade with transaction management for
// the authorizer's single atomic unit.
type PayrollRepositoryWithTx interface {
	PayrollRepositoryFacade
	TransactionManager
}
