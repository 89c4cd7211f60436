package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/middleware"
	"github.com/zenitherp/payroll_backend/internal/utils/accounting"
)

// journalService provides the balanced posting primitive and entry reads.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildEntry turns a posting request into a domain entry plus lines and the
// per-account balance deltas, after validating the balancing invariant and
// that every referenced account exists and is active.
func (s *journalService) buildEntry(ctx context.Context, req dto.CreateJournalRequest, userID string, now time.Time) (domain.JournalEntry, []domain.JournalLine, map[string]decimal.Decimal, error) {
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   req.Date,
		Description: req.Description,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	deltas := make(map[string]decimal.Decimal)
	accountIDs := make([]string, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: lineReq.AccountID,
			Amount:    lineReq.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if _, seen := deltas[lineReq.AccountID]; !seen {
			accountIDs = append(accountIDs, lineReq.AccountID)
		}
		deltas[lineReq.AccountID] = deltas[lineReq.AccountID].Add(lineReq.Amount)
	}

	if err := accounting.ValidateEntryLines(lines); err != nil {
		return domain.JournalEntry{}, nil, nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return domain.JournalEntry{}, nil, nil, err
	}
	for _, accountID := range accountIDs {
		account, found := accounts[accountID]
		if !found {
			return domain.JournalEntry{}, nil, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		if !account.IsActive {
			return domain.JournalEntry{}, nil, nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
		}
	}

	return entry, lines, deltas, nil
}

// PostJournal validates and persists a balanced entry, applying the balance
// deltas to the referenced accounts in one database transaction.
func (s *journalService) PostJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	now := time.Now().UTC()

	entry, lines, deltas, err := s.buildEntry(ctx, req, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines, deltas); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.Int("lines", len(lines)),
	)

	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves an entry together with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntries retrieves a paginated list of entries.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListParams) (*dto.ListJournalEntriesResponse, error) {
	entries, nextToken, err := s.journalRepo.ListEntries(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return resp, nil
}
