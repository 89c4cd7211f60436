package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with a zero balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		Description: req.Description,
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByID retrieves an account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves a page of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount applies the provided editable fields to an account.
// Balance and account type are never editable.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
		}
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetLedgerLines retrieves the posted lines of one account, paginated.
func (s *accountService) GetLedgerLines(ctx context.Context, accountID string, params dto.ListParams) (*dto.LedgerLinesResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	lines, nextToken, err := s.journalRepo.ListLinesByAccountID(ctx, accountID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.LedgerLinesResponse{
		AccountID: accountID,
		Lines:     make([]dto.JournalLineResponse, len(lines)),
		NextToken: nextToken,
	}
	for i := range lines {
		resp.Lines[i] = dto.ToJournalLineResponse(&lines[i])
	}
	return resp, nil
}
