package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	"github.com/zenitherp/payroll_backend/internal/models"
	"github.com/zenitherp/payroll_backend/internal/utils/mapping"
)

const employeeColumns = `employee_id, name, monthly_salary, salary_raw, bank_name, bank_account, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for roster data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.MonthlySalary,
		&m.SalaryRaw,
		&m.BankName,
		&m.BankAccount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.MonthlySalary,
		m.SalaryRaw,
		m.BankName,
		m.BankAccount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: employee with ID %s already exists", apperrors.ErrDuplicate, m.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// UpdateEmployee updates an existing employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees
		SET name = $2, monthly_salary = $3, salary_raw = $4, bank_name = $5, bank_account = $6, status = $7, last_updated_at = $8, last_updated_by = $9
		WHERE employee_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.MonthlySalary,
		m.SalaryRaw,
		m.BankName,
		m.BankAccount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEmployeeByID retrieves an employee by identifier.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// FindEmployeesByIDs retrieves multiple employees keyed by ID.
func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return map[string]domain.Employee{}, nil
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by IDs: %w", err)
	}
	defer rows.Close()

	employeesMap := make(map[string]domain.Employee)
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row during batch fetch: %w", err)
		}
		employeesMap[m.EmployeeID] = mapping.ToDomainEmployee(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows during batch fetch: %w", err)
	}

	return employeesMap, nil
}

// ListEmployees retrieves a page of the roster ordered by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(employees), nil
}

// ListActiveEmployees retrieves the payroll-eligible roster, ordered by name
// so run lines come out in a stable order.
func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE status = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, models.EmployeeActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active employee row: %w", err)
		}
		employees = append(employees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating active employee rows: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(employees), nil
}
