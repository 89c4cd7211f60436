package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// CreateJournalLineRequest is one signed leg of a new journal entry.
// Debits are positive, credits negative.
type CreateJournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// CreateJournalRequest defines the input for posting a journal entry.
type CreateJournalRequest struct {
	Date        time.Time                  `json:"date" binding:"required"`
	Description string                     `json:"description" binding:"required"`
	Reference   string                     `json:"reference"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Reference   string                `json:"reference"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesResponse wraps a page of entries and the next-page token.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ListParams holds token pagination parameters for list endpoints.
type ListParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ToJournalLineResponse converts a domain journal line to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Amount:    l.Amount,
	}
}

// ToJournalEntryResponse converts a domain entry (with optional lines) to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:     e.EntryID,
		Date:        e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&e.Lines[i])
		}
	}
	return resp
}
