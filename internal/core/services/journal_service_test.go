package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/core/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	accountRepo *MockAccountRepository
	service     portssvc.JournalSvcFacade
	ctx         context.Context
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.journalRepo = new(MockJournalRepository)
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewJournalService(s.journalRepo, s.accountRepo)
	s.ctx = context.Background()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func journalRequest(amounts map[string]string) dto.CreateJournalRequest {
	req := dto.CreateJournalRequest{
		Date:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Description: "March office rent",
	}
	for accountID, amount := range amounts {
		req.Lines = append(req.Lines, dto.CreateJournalLineRequest{
			AccountID: accountID,
			Amount:    decimal.RequireFromString(amount),
		})
	}
	return req
}

func activeAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, IsActive: true}
	}
	return accounts
}

func (s *JournalServiceTestSuite) TestPostJournal_Success() {
	req := journalRequest(map[string]string{"acc-rent": "250000", "acc-bank": "-250000"})

	s.accountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(activeAccounts("acc-rent", "acc-bank"), nil)

	var savedDeltas map[string]decimal.Decimal
	s.journalRepo.On("SaveEntry", s.ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedDeltas = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil)

	entry, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(entry.EntryID)
	s.Len(entry.Lines, 2)
	s.True(savedDeltas["acc-rent"].Equal(decimal.RequireFromString("250000")))
	s.True(savedDeltas["acc-bank"].Equal(decimal.RequireFromString("-250000")))
	s.journalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestPostJournal_AggregatesDeltasPerAccount() {
	req := dto.CreateJournalRequest{
		Date:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Description: "split debit",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-a", Amount: decimal.RequireFromString("60")},
			{AccountID: "acc-a", Amount: decimal.RequireFromString("40")},
			{AccountID: "acc-b", Amount: decimal.RequireFromString("-100")},
		},
	}

	s.accountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(activeAccounts("acc-a", "acc-b"), nil)

	var savedDeltas map[string]decimal.Decimal
	s.journalRepo.On("SaveEntry", s.ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedDeltas = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil)

	_, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.Len(savedDeltas, 2)
	s.True(savedDeltas["acc-a"].Equal(decimal.RequireFromString("100")))
}

func (s *JournalServiceTestSuite) TestPostJournal_Unbalanced() {
	req := journalRequest(map[string]string{"acc-rent": "250000", "acc-bank": "-249999.98"})

	_, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrUnbalanced)
	s.journalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostJournal_SingleLine() {
	req := journalRequest(map[string]string{"acc-rent": "250000"})

	_, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrTooFewLines)
}

func (s *JournalServiceTestSuite) TestPostJournal_UnknownAccount() {
	req := journalRequest(map[string]string{"acc-rent": "250000", "acc-ghost": "-250000"})

	s.accountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(activeAccounts("acc-rent"), nil)

	_, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.journalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostJournal_InactiveAccount() {
	req := journalRequest(map[string]string{"acc-rent": "250000", "acc-closed": "-250000"})

	accounts := activeAccounts("acc-rent")
	accounts["acc-closed"] = domain.Account{AccountID: "acc-closed", IsActive: false}
	s.accountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(accounts, nil)

	_, err := s.service.PostJournal(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestGetEntryByID_AttachesLines() {
	s.journalRepo.On("FindEntryByID", s.ctx, "entry-1").Return(&domain.JournalEntry{EntryID: "entry-1"}, nil)
	s.journalRepo.On("FindLinesByEntryID", s.ctx, "entry-1").Return([]domain.JournalLine{
		{LineID: "line-1"}, {LineID: "line-2"},
	}, nil)

	entry, err := s.service.GetEntryByID(s.ctx, "entry-1")

	s.Require().NoError(err)
	s.Len(entry.Lines, 2)
}

func (s *JournalServiceTestSuite) TestListEntries_PassesTokenThrough() {
	token := "next-page"
	s.journalRepo.On("ListEntries", s.ctx, 10, (*string)(nil)).Return([]domain.JournalEntry{
		{EntryID: "entry-1"},
	}, token, nil)

	resp, err := s.service.ListEntries(s.ctx, dto.ListParams{Limit: 10})

	s.Require().NoError(err)
	s.Len(resp.Entries, 1)
	s.Require().NotNil(resp.NextToken)
	s.Equal(token, *resp.NextToken)
}
