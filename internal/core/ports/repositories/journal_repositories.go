package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves a paginated list of journal entries using
	// token-based pagination. It returns the entries and a next-page token.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListLinesByAccountID retrieves a paginated ledger listing for one account.
	ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// JournalWriter defines write operations for journal data. Entries are
// immutable once posted; there are no update methods.
type JournalWriter interface {
	// SaveEntry persists an entry with its lines and applies the account
	// balance deltas in a single database transaction it owns.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, deltas map[string]decimal.Decimal) error

	// SaveEntryInTx persists an entry and its lines within a caller-owned
	// transaction; balance deltas are the caller's responsibility.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
