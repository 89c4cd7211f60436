package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single, balanced financial event.
// Entries are immutable once inserted; there is no update path.
type JournalEntry struct {
	EntryID     string         `db:"entry_id"`
	EntryDate   time.Time      `db:"entry_date"`
	Description string         `db:"description"`
	Reference   sql.NullString `db:"reference"`
	AuditFields
}

// JournalLine is a single leg of a journal entry. Amount is signed:
// positive for debits, negative for credits.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	AuditFields
}
