package services

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntryByID retrieves an entry together with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines the balanced posting primitive.
type JournalWriterSvc interface {
	// PostJournal validates and persists a balanced entry, applying the
	// balance deltas to the referenced accounts atomically.
	PostJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
