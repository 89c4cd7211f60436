package accounting

import (
	"fmt"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// ValidateEntryLines enforces the posting invariants shared by the journal
// service and the payroll authorizer: at least two lines, and signed amounts
// (debit-positive / credit-negative) summing to zero within
// domain.BalanceTolerance. The tolerance absorbs 2dp rounding of amounts
// derived by division upstream.
func ValidateEntryLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return apperrors.ErrTooFewLines
	}

	sum := domain.LineSum(lines)
	if sum.Abs().GreaterThan(domain.BalanceTolerance) {
		debits, credits := domain.DebitCreditTotals(lines)
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced, debits, credits)
	}

	return nil
}
