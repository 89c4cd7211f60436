package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Fixed chart-of-accounts codes the payroll authorizer posts against.
// All five must exist before a run can be authorized.
const (
	CodeBankAccount    = "1000" // Asset: disbursement bank account
	CodePayePayable    = "2100" // Liability: PAYE tax withheld
	CodePensionPayable = "2200" // Liability: pension contributions withheld
	CodeNhfPayable     = "2300" // Liability: NHF contributions withheld
	CodeSalariesExp    = "6000" // Expense: gross salaries
)

// PayrollAccountCodes lists the fixed codes in a stable order.
var PayrollAccountCodes = []string{
	CodeSalariesExp,
	CodeBankAccount,
	CodePayePayable,
	CodePensionPayable,
	CodeNhfPayable,
}

// Account represents a ledger account with a persisted running balance.
// The balance is the sum of every journal line ever posted against the
// account, with debit-positive / credit-negative amounts regardless of type.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary key (UUID)
	Code        string          `json:"code"`      // Unique chart-of-accounts code
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
