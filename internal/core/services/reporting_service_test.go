package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/findash/findash_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.ReportingSvcFacade
	account         domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockTxnRepo, 30)

	suite.account = domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Checking Account",
		Balance:   decimal.NewFromInt(1000),
	}
}

// --- BalanceHistory ---

func (suite *ReportingServiceTestSuite) TestBalanceHistory_ReconstructsBackwardFromCachedBalance() {
	ctx := context.Background()

	// Cached balance 1000. A 200 debit seven days ago means the balance at
	// the window start was 1200.
	debit := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC().AddDate(0, 0, -7),
		Description:   "Rent",
		Type:          domain.Debit,
		Amount:        decimal.NewFromInt(200),
		AccountID:     suite.account.AccountID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountSince", ctx, suite.account.AccountID, mock.AnythingOfType("time.Time")).Return([]domain.Transaction{debit}, nil).Once()

	history, err := suite.service.BalanceHistory(ctx, suite.account.AccountID, 30)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.True(history[0].Balance.Equal(decimal.NewFromInt(1200)), "window start balance should be 1200, got %s", history[0].Balance)
	suite.Equal(debit.Date, history[1].Date)
	suite.True(history[1].Balance.Equal(decimal.NewFromInt(1000)), "final balance should land on the cached balance, got %s", history[1].Balance)
	suite.True(history[0].Date.Before(history[1].Date))
}

func (suite *ReportingServiceTestSuite) TestBalanceHistory_MultipleTransactionsReplayInOrder() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Oldest first, as the repository returns them.
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), Date: now.AddDate(0, 0, -20), Type: domain.Credit, Amount: decimal.NewFromInt(500), AccountID: suite.account.AccountID},
		{TransactionID: uuid.NewString(), Date: now.AddDate(0, 0, -10), Type: domain.Debit, Amount: decimal.NewFromInt(300), AccountID: suite.account.AccountID},
		{TransactionID: uuid.NewString(), Date: now.AddDate(0, 0, -1), Type: domain.Debit, Amount: decimal.NewFromInt(100), AccountID: suite.account.AccountID},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountSince", ctx, suite.account.AccountID, mock.AnythingOfType("time.Time")).Return(txns, nil).Once()

	history, err := suite.service.BalanceHistory(ctx, suite.account.AccountID, 30)

	suite.Require().NoError(err)
	suite.Require().Len(history, 4)
	// 1000 - (+500 - 300 - 100) = 900 at the window start.
	suite.True(history[0].Balance.Equal(decimal.NewFromInt(900)))
	suite.True(history[1].Balance.Equal(decimal.NewFromInt(1400)))
	suite.True(history[2].Balance.Equal(decimal.NewFromInt(1100)))
	suite.True(history[3].Balance.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingServiceTestSuite) TestBalanceHistory_NoTransactionsYieldsFlatPoint() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountSince", ctx, suite.account.AccountID, mock.AnythingOfType("time.Time")).Return([]domain.Transaction{}, nil).Once()

	history, err := suite.service.BalanceHistory(ctx, suite.account.AccountID, 30)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.True(history[0].Balance.Equal(suite.account.Balance))
}

func (suite *ReportingServiceTestSuite) TestBalanceHistory_NonPositiveDaysUsesDefaultWindow() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountSince", ctx, suite.account.AccountID, mock.MatchedBy(func(since time.Time) bool {
		// Default window is 30 days.
		expected := time.Now().UTC().AddDate(0, 0, -30)
		return since.Sub(expected).Abs() < time.Minute
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.BalanceHistory(ctx, suite.account.AccountID, 0)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceHistory_AccountNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.BalanceHistory(ctx, unknownID, 30)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByAccountSince", mock.Anything, mock.Anything, mock.Anything)
}

// --- MonthlySummary ---

func (suite *ReportingServiceTestSuite) TestMonthlySummary_SparseMonths() {
	ctx := context.Background()
	year := 2024

	// January and March have activity, February does not.
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Type: domain.Credit, Amount: decimal.NewFromInt(3000), AccountID: suite.account.AccountID},
		{TransactionID: uuid.NewString(), Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Type: domain.Debit, Amount: decimal.NewFromInt(800), AccountID: suite.account.AccountID},
		{TransactionID: uuid.NewString(), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Type: domain.Debit, Amount: decimal.NewFromInt(150), AccountID: suite.account.AccountID},
	}

	suite.mockTxnRepo.On("FindTransactionsByYear", ctx, year).Return(txns, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, year)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.NotContains(summaries, 2)

	january := summaries[1]
	suite.Equal(1, january.Month)
	suite.Equal(2, january.Count)
	suite.True(january.CreditTotal.Equal(decimal.NewFromInt(3000)))
	suite.True(january.DebitTotal.Equal(decimal.NewFromInt(800)))
	suite.True(january.Net.Equal(decimal.NewFromInt(2200)))

	march := summaries[3]
	suite.Equal(1, march.Count)
	suite.True(march.Net.Equal(decimal.NewFromInt(-150)))
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_EmptyYear() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionsByYear", ctx, 2019).Return([]domain.Transaction{}, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, 2019)

	suite.Require().NoError(err)
	suite.Empty(summaries)
}

// --- Run Suite ---

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
