package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflicting resource state")

// ErrForbidden indicates the caller is authenticated but not permitted to act.
var ErrForbidden = errors.New("action not permitted")

// Payroll-specific failures. All wrap one of the taxonomy sentinels above so
// handlers can map them to HTTP statuses with errors.Is.
var (
	// ErrNoEligibleEmployees is returned by the run builder when the roster
	// holds no active employees for the requested period.
	ErrNoEligibleEmployees = fmt.Errorf("%w: no active employees eligible for payroll", ErrValidation)

	// ErrRunFinalized is returned when a processed run exists for the period;
	// processed runs are immutable and can never be rebuilt.
	ErrRunFinalized = fmt.Errorf("%w: payroll run for this period is already processed", ErrConflict)

	// ErrInvalidRunState is returned when a run is not in the state the
	// requested transition expects (e.g. authorizing a non-draft run).
	ErrInvalidRunState = fmt.Errorf("%w: payroll run is not in the required state", ErrConflict)

	// ErrChartIncomplete is returned when one of the fixed payroll ledger
	// accounts is missing from the chart of accounts.
	ErrChartIncomplete = fmt.Errorf("%w: chart of accounts is missing a required payroll account", ErrNotFound)

	// ErrUnbalanced is returned when journal line amounts do not sum to zero
	// within tolerance.
	ErrUnbalanced = fmt.Errorf("%w: journal lines do not balance to zero", ErrValidation)

	// ErrTooFewLines is returned for journal entries with fewer than two lines.
	ErrTooFewLines = fmt.Errorf("%w: journal must have at least two lines", ErrValidation)
)

// AppError carries an HTTP-ish status code alongside a message and cause.
// Repositories use it to wrap infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
