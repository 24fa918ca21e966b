package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/handlers"
	"github.com/shopbooks/shopbooks_backend/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListAccounts(ctx context.Context) ([]domain.AccountWithBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountWithBalance), args.Error(1)
}
func (m *MockLedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) AddTransaction(ctx context.Context, accountID string, req dto.AddTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) EditTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockLedgerService) ComputeBalances(ctx context.Context, accountID string) (*domain.AccountBalances, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalances), args.Error(1)
}
func (m *MockLedgerService) BuildStatement(ctx context.Context, accountID, startDate, endDate string) (*domain.AccountStatement, error) {
	args := m.Called(ctx, accountID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) ListCheques(ctx context.Context) ([]domain.Cheque, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}
func (m *MockChequeService) GetCheque(ctx context.Context, chequeNumber string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) CreateCheque(ctx context.Context, req dto.CreateChequeRequest) (*domain.Cheque, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) DeleteCheque(ctx context.Context, chequeNumber string) error {
	args := m.Called(ctx, chequeNumber)
	return args.Error(0)
}
func (m *MockChequeService) SetStatus(ctx context.Context, chequeNumber string, status string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeNumber, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) GetDetails(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error) {
	args := m.Called(ctx, chequeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChequeDetail), args.Error(1)
}
func (m *MockChequeService) UpsertDetails(ctx context.Context, chequeNumber string, req dto.UpsertChequeDetailsRequest) (*domain.ChequeDetail, bool, error) {
	args := m.Called(ctx, chequeNumber, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ChequeDetail), args.Bool(1), args.Error(2)
}

var _ portssvc.ChequeSvcFacade = (*MockChequeService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportSummary), args.Error(1)
}
func (m *MockReportService) GetReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	args := m.Called(ctx, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReceivablesReport), args.Error(1)
}
func (m *MockReportService) UpsertReport(ctx context.Context, req dto.UpsertReportRequest) (*domain.DailyReceivablesReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReceivablesReport), args.Error(1)
}
func (m *MockReportService) AddLineItem(ctx context.Context, reportDate string, section string) (*domain.DailyReceivablesReport, error) {
	args := m.Called(ctx, reportDate, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReceivablesReport), args.Error(1)
}
func (m *MockReportService) FinishReport(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	args := m.Called(ctx, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReceivablesReport), args.Error(1)
}
func (m *MockReportService) DeleteReport(ctx context.Context, reportDate string) error {
	args := m.Called(ctx, reportDate)
	return args.Error(0)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	mockChequeService *MockChequeService
	mockReportService *MockReportService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockChequeService = new(MockChequeService)
	suite.mockReportService = new(MockReportService)

	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Ledger: suite.mockLedgerService,
		Cheque: suite.mockChequeService,
		Report: suite.mockReportService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.AccountWithBalance{
		{
			Account: domain.Account{AccountID: uuid.NewString(), Name: "Shop Counter"},
			Balance: decimal.RequireFromString("60"),
			Side:    domain.DebitBalance,
		},
	}

	suite.mockLedgerService.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("Shop Counter", body[0].Name)
	suite.Equal("Debit", body[0].Side)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateAccount_Created() {
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Shop Counter"}

	suite.mockLedgerService.On("CreateAccount", mock.Anything, dto.CreateAccountRequest{Name: "Shop Counter"}).
		Return(account, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"name":"Shop Counter"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateAccount_DuplicateMapsToConflict() {
	suite.mockLedgerService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, fmt.Errorf("%w: account name exists", apperrors.ErrDuplicate)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"name":"Shop Counter"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateAccount_MissingNameFailsBinding() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestDeleteAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockLedgerService.On("DeleteAccount", mock.Anything, accountID).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddTransaction_ValidationMapsToBadRequest() {
	accountID := uuid.NewString()

	suite.mockLedgerService.On("AddTransaction", mock.Anything, accountID, mock.AnythingOfType("dto.AddTransactionRequest")).
		Return(nil, fmt.Errorf("%w: either a debit or a credit amount is required", apperrors.ErrValidation)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", strings.NewReader(`{"date":"2025-03-04"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddTransaction_Created() {
	accountID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Date:          "2025-03-04",
		Debit:         decimal.RequireFromString("150.50"),
	}

	suite.mockLedgerService.On("AddTransaction", mock.Anything, accountID, mock.MatchedBy(func(r dto.AddTransactionRequest) bool {
		return r.Date == "2025-03-04" && r.Debit.Decimal.Equal(decimal.RequireFromString("150.50"))
	})).Return(txn, nil).Once()

	body := `{"date":"2025-03-04","debit":"150.50","details":"goods sold"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(txn.TransactionID, res.ID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_MissingParams() {
	accountID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/statement", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "BuildStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_Success() {
	accountID := uuid.NewString()
	statement := &domain.AccountStatement{
		AccountID:   accountID,
		AccountName: "Shop Counter",
		StartDate:   "2025-01-01",
		EndDate:     "2025-02-28",
		Rows: []domain.Transaction{
			{TransactionID: uuid.NewString(), AccountID: accountID, Date: "2025-01-05", Debit: decimal.RequireFromString("100")},
		},
		TotalDebits:  decimal.RequireFromString("100"),
		TotalCredits: decimal.Zero,
	}

	suite.mockLedgerService.On("BuildStatement", mock.Anything, accountID, "2025-01-01", "2025-02-28").
		Return(statement, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/statement?startDate=2025-01-01&endDate=2025-02-28", accountID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var res dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Rows, 1)
	suite.Equal("Shop Counter", res.AccountName)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
