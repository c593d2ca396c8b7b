package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/findash/findash_backend/internal/dto"
	"github.com/findash/findash_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAccountSvc   *MockAccountService
	mockLedgerSvc    *MockLedgerService
	mockReportingSvc *MockReportingService
	account          domain.Account
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockReportingSvc = new(MockReportingService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account:   suite.mockAccountSvc,
		Ledger:    suite.mockLedgerSvc,
		Reporting: suite.mockReportingSvc,
	})

	suite.account = domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Checking Account",
		Balance:   decimal.NewFromInt(1000),
	}
}

func (suite *TransactionHandlerTestSuite) performRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) validCreateBody() gin.H {
	return gin.H{
		"date":        time.Now().UTC().Format(time.RFC3339),
		"description": "Supermarket",
		"type":        "DEBIT",
		"category":    "Groceries",
		"amount":      30,
		"accountID":   suite.account.AccountID,
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Description:   "Supermarket",
		Type:          domain.Debit,
		Category:      "Groceries",
		Amount:        decimal.NewFromInt(30),
		AccountID:     suite.account.AccountID,
	}
	suite.mockLedgerSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == domain.Debit && req.Amount.Equal(decimal.NewFromInt(30)) && req.AccountID == suite.account.AccountID
	})).Return(&txn, nil).Once()

	w := suite.performRequest(http.MethodPost, "/transactions", suite.validCreateBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.TransactionID)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidTypeRejectedByBinding() {
	body := suite.validCreateBody()
	body["type"] = "TRANSFER"

	w := suite.performRequest(http.MethodPost, "/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_AccountNotFound() {
	notFoundErr := fmt.Errorf("%w: account %s", apperrors.ErrNotFound, suite.account.AccountID)
	suite.mockLedgerSvc.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, notFoundErr).Once()

	w := suite.performRequest(http.MethodPost, "/transactions", suite.validCreateBody())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesQueryFilters() {
	suite.mockLedgerSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(params dto.ListTransactionsParams) bool {
		return params.Month != nil && *params.Month == 5 &&
			params.Year != nil && *params.Year == 2024 &&
			params.Category != nil && *params.Category == "Groceries" &&
			params.Limit == 10
	})).Return([]domain.Transaction{}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/transactions?month=5&year=2024&category=Groceries&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidMonthRejected() {
	w := suite.performRequest(http.MethodGet, "/transactions?month=13", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_IntegrityViolationIs500() {
	transactionID := uuid.NewString()
	integrityErr := fmt.Errorf("%w: transaction %s references missing account %s", apperrors.ErrIntegrity, transactionID, suite.account.AccountID)
	suite.mockLedgerSvc.On("UpdateTransaction", mock.Anything, transactionID, mock.Anything).Return(nil, integrityErr).Once()

	w := suite.performRequest(http.MethodPut, "/transactions/"+transactionID, suite.validCreateBody())

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "missing account")
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_ReturnsDeletedRecord() {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Description:   "Supermarket",
		Type:          domain.Debit,
		Amount:        decimal.NewFromInt(30),
		AccountID:     suite.account.AccountID,
	}
	suite.mockLedgerSvc.On("DeleteTransaction", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/transactions/"+txn.TransactionID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.TransactionID)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	transactionID := uuid.NewString()
	notFoundErr := fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	suite.mockLedgerSvc.On("DeleteTransaction", mock.Anything, transactionID).Return(nil, notFoundErr).Once()

	w := suite.performRequest(http.MethodDelete, "/transactions/"+transactionID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestMonthlySummary_SparseResponse() {
	summaries := map[int]domain.MonthlySummary{
		1: {Month: 1, CreditTotal: decimal.NewFromInt(3000), DebitTotal: decimal.NewFromInt(800), Net: decimal.NewFromInt(2200), Count: 2},
		3: {Month: 3, DebitTotal: decimal.NewFromInt(150), Net: decimal.NewFromInt(-150), Count: 1},
	}
	suite.mockReportingSvc.On("MonthlySummary", mock.Anything, 2024).Return(summaries, nil).Once()

	w := suite.performRequest(http.MethodGet, "/transactions/monthly?year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.True(resp[1].Net.Equal(decimal.NewFromInt(2200)))
	suite.NotContains(resp, 2)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestMonthlySummary_MissingYearRejected() {
	w := suite.performRequest(http.MethodGet, "/transactions/monthly", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingSvc.AssertNotCalled(suite.T(), "MonthlySummary", mock.Anything, mock.Anything)
}

// --- Run Suite ---

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
