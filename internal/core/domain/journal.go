package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest absolute line-sum a journal entry may carry
// and still be considered balanced. It absorbs rounding from upstream
// per-component rounding (e.g. monthly PAYE = annual / 12 at 2dp).
var BalanceTolerance = decimal.NewFromFloat(0.01)

// JournalEntry represents a single balanced financial event.
// Entries are immutable once posted; corrections are posted as new
// balancing entries.
type JournalEntry struct {
	EntryID     string        `json:"entryID"` // Primary key (UUID)
	EntryDate   time.Time     `json:"entryDate"`
	Description string        `json:"description"`
	Reference   string        `json:"reference"` // External reference, e.g. "PAYROLL-2026-03"
	Lines       []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is one leg of a journal entry. Amount is signed:
// debits positive, credits negative, regardless of account type.
type JournalLine struct {
	LineID    string          `json:"lineID"` // Primary key (UUID)
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	AuditFields
}

// LineSum returns the signed sum of all line amounts.
func LineSum(lines []JournalLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// DebitCreditTotals splits the lines into total debits (positive amounts)
// and total credits (absolute value of negative amounts).
func DebitCreditTotals(lines []JournalLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		if l.Amount.IsNegative() {
			credits = credits.Add(l.Amount.Neg())
		} else {
			debits = debits.Add(l.Amount)
		}
	}
	return debits, credits
}
