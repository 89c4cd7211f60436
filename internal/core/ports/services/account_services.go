package services

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// AccountSvcFacade defines chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount persists a new ledger account with a zero balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves an account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	// UpdateAccount updates an account's editable details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// GetLedgerLines retrieves the posted lines of one account, paginated.
	GetLedgerLines(ctx context.Context, accountID string, params dto.ListParams) (*dto.LedgerLinesResponse, error)
}
