package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// CreateAccountRequest defines the input for creating a ledger account.
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string `json:"description"`
}

// UpdateAccountRequest defines the editable fields of an account.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	Balance     decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// LedgerLinesResponse wraps a page of an account's posted lines.
type LedgerLinesResponse struct {
	AccountID string                `json:"accountID"`
	Lines     []JournalLineResponse `json:"lines"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToAccountResponse converts a domain account to its DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Description: a.Description,
		IsActive:    a.IsActive,
		Balance:     a.Balance,
	}
}
