package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	"github.com/zenitherp/payroll_backend/internal/models"
	"github.com/zenitherp/payroll_backend/internal/utils/mapping"
)

const runColumns = `run_id, month, year, status, total_gross, total_paye, total_pension, total_nhf, total_net, employee_count, processed_at, created_at, created_by, last_updated_at, last_updated_by`
const payrollLineColumns = `line_id, run_id, employee_id, employee_name, basic_salary, allowances, bonus, cash_benefits, gross_pay, cra, taxable, paye, pension, nhf, net_pay, created_at, created_by, last_updated_at, last_updated_by`

type PgxPayrollRepository struct {
	BaseRepository
}

// newPgxPayrollRepository creates a new repository for payroll run data.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryWithTx {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryWithTx = (*PgxPayrollRepository)(nil)

func scanRun(row pgx.Row) (models.PayrollRun, error) {
	var m models.PayrollRun
	err := row.Scan(
		&m.RunID,
		&m.Month,
		&m.Year,
		&m.Status,
		&m.TotalGross,
		&m.TotalPaye,
		&m.TotalPension,
		&m.TotalNhf,
		&m.TotalNet,
		&m.EmployeeCount,
		&m.ProcessedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRun persists a run together with all of its lines in one transaction.
// A duplicate (month, year) surfaces as ErrDuplicate from the unique index.
func (r *PgxPayrollRepository) SaveRun(ctx context.Context, run domain.PayrollRun, lines []domain.PayrollLine) error {
	m := mapping.ToModelPayrollRun(run)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	runQuery := `
		INSERT INTO payroll_runs (` + runColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, runQuery,
		m.RunID,
		m.Month,
		m.Year,
		m.Status,
		m.TotalGross,
		m.TotalPaye,
		m.TotalPension,
		m.TotalNhf,
		m.TotalNet,
		m.EmployeeCount,
		m.ProcessedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: a payroll run for %d/%d already exists", apperrors.ErrDuplicate, m.Month, m.Year)
		}
		return fmt.Errorf("failed to insert payroll run %s: %w", m.RunID, err)
	}

	lineQuery := `
		INSERT INTO payroll_lines (` + payrollLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		ml := mapping.ToModelPayrollLine(line)
		ml.RunID = m.RunID
		ml.CreatedAt = m.CreatedAt
		ml.CreatedBy = m.CreatedBy
		ml.LastUpdatedAt = m.LastUpdatedAt
		ml.LastUpdatedBy = m.LastUpdatedBy
		batch.Queue(lineQuery,
			ml.LineID,
			ml.RunID,
			ml.EmployeeID,
			ml.EmployeeName,
			ml.BasicSalary,
			ml.Allowances,
			ml.Bonus,
			ml.CashBenefits,
			ml.GrossPay,
			ml.Cra,
			ml.Taxable,
			ml.Paye,
			ml.Pension,
			ml.Nhf,
			ml.NetPay,
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute payroll line batch for run %s: %w", m.RunID, err)
	}

	return r.Commit(ctx, tx)
}

// FindRunByID retrieves a run by its identifier, without lines.
func (r *PgxPayrollRepository) FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE run_id = $1;`

	m, err := scanRun(r.Pool.QueryRow(ctx, query, runID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll run %s: %w", runID, err)
	}

	d := mapping.ToDomainPayrollRun(m)
	return &d, nil
}

// FindRunByPeriod retrieves the run for a (month, year) period, if any.
func (r *PgxPayrollRepository) FindRunByPeriod(ctx context.Context, month, year int) (*domain.PayrollRun, error) {
	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE month = $1 AND year = $2;`

	m, err := scanRun(r.Pool.QueryRow(ctx, query, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll run for %d/%d: %w", month, year, err)
	}

	d := mapping.ToDomainPayrollRun(m)
	return &d, nil
}

// FindLinesByRunID retrieves all payslip lines of a run, ordered by employee name.
func (r *PgxPayrollRepository) FindLinesByRunID(ctx context.Context, runID string) ([]domain.PayrollLine, error) {
	query := `
		SELECT ` + payrollLineColumns + `
		FROM payroll_lines
		WHERE run_id = $1
		ORDER BY employee_name, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll lines for run %s: %w", runID, err)
	}
	defer rows.Close()

	lines := []models.PayrollLine{}
	for rows.Next() {
		var l models.PayrollLine
		err := rows.Scan(
			&l.LineID,
			&l.RunID,
			&l.EmployeeID,
			&l.EmployeeName,
			&l.BasicSalary,
			&l.Allowances,
			&l.Bonus,
			&l.CashBenefits,
			&l.GrossPay,
			&l.Cra,
			&l.Taxable,
			&l.Paye,
			&l.Pension,
			&l.Nhf,
			&l.NetPay,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll line row for run %s: %w", runID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll line rows for run %s: %w", runID, err)
	}

	return mapping.ToDomainPayrollLineSlice(lines), nil
}

// ListRuns retrieves runs ordered by period, most recent first.
func (r *PgxPayrollRepository) ListRuns(ctx context.Context, limit int, offset int) ([]domain.PayrollRun, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		ORDER BY year DESC, month DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll runs: %w", err)
	}
	defer rows.Close()

	runs := []models.PayrollRun{}
	for rows.Next() {
		m, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run row: %w", err)
		}
		runs = append(runs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll run rows: %w", err)
	}

	return mapping.ToDomainPayrollRunSlice(runs), nil
}

// DeleteRun removes a run; the lines cascade via their foreign key.
func (r *PgxPayrollRepository) DeleteRun(ctx context.Context, runID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payroll_runs WHERE run_id = $1;`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll run %s: %w", runID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkRunProcessedInTx flips a run from DRAFT to PROCESSED within the given
// transaction. The status guard in the WHERE clause makes the flip the
// serialization point: of two concurrent authorizations the loser affects
// zero rows and gets ErrInvalidRunState.
func (r *PgxPayrollRepository) MarkRunProcessedInTx(ctx context.Context, tx pgx.Tx, runID string, processedAt time.Time, userID string) error {
	query := `
		UPDATE payroll_runs
		SET status = $2, processed_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE run_id = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, query, runID, models.RunProcessed, processedAt, userID, models.RunDraft)
	if err != nil {
		return fmt.Errorf("failed to mark payroll run %s processed: %w", runID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidRunState
	}
	return nil
}
