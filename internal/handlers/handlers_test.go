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

	"github.com/SscSPs/property_finance/internal/apperrors"
	"github.com/SscSPs/property_finance/internal/core/domain"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/core/services"
	"github.com/SscSPs/property_finance/internal/handlers"
	"github.com/SscSPs/property_finance/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock PropertyFinanceService ---
type MockPropertyFinanceService struct {
	mock.Mock
}

func (m *MockPropertyFinanceService) PropertyFinancials(ctx context.Context, propertyID string, asOf time.Time) (*domain.PropertyFinancials, error) {
	args := m.Called(ctx, propertyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyFinancials), args.Error(1)
}

func (m *MockPropertyFinanceService) UnitFinancials(ctx context.Context, unitID string, asOf time.Time) (*domain.RollupResult, error) {
	args := m.Called(ctx, unitID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollupResult), args.Error(1)
}

var _ portssvc.PropertyFinanceSvc = (*MockPropertyFinanceService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GeneralLedger(ctx context.Context, query domain.LedgerQuery) (*domain.GeneralLedger, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralLedger), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock LeaseBalanceService ---
type MockLeaseBalanceService struct {
	mock.Mock
}

func (m *MockLeaseBalanceService) LeaseBalances(ctx context.Context, leaseID string) (*domain.LeaseBalanceReport, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaseBalanceReport), args.Error(1)
}

var _ portssvc.LeaseBalanceSvc = (*MockLeaseBalanceService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	propertySvc *MockPropertyFinanceService
	ledgerSvc   *MockLedgerService
	leaseSvc    *MockLeaseBalanceService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.propertySvc = new(MockPropertyFinanceService)
	suite.ledgerSvc = new(MockLedgerService)
	suite.leaseSvc = new(MockLeaseBalanceService)

	cfg := &config.Config{IsProduction: true, RateLimit: "100-M"}
	container := &portssvc.ServiceContainer{
		PropertyFinance: suite.propertySvc,
		Ledger:          suite.ledgerSvc,
		LeaseBalance:    suite.leaseSvc,
		Compute:         services.NewComputeService(),
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.propertySvc.AssertExpectations(suite.T())
	suite.ledgerSvc.AssertExpectations(suite.T())
	suite.leaseSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func (suite *HandlerTestSuite) TestHealth() {
	w, _ := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Compute routes ---

func (suite *HandlerTestSuite) TestRollup_Success() {
	w, out := suite.do(http.MethodPost, "/api/v1/finance/rollup", map[string]any{
		"lines": []map[string]any{
			{"amount": 1500, "posting_type": "Debit", "gl_accounts": map[string]any{"type": "Asset", "is_bank_account": true}},
			{"amount": 500, "posting_type": "Credit", "gl_accounts": map[string]any{"type": "Liability", "is_security_deposit_liability": true}},
		},
		"reserve": "250",
		"asOf":    "2024-03-15",
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	fin := out["fin"].(map[string]any)
	suite.Equal("1500", fin["cash_balance"])
	suite.Equal("-500", fin["security_deposits"])
	suite.Equal("750", fin["available_balance"])
	suite.Equal("2024-03-15", fin["as_of"])
	suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (suite *HandlerTestSuite) TestRollup_ValidationErrors() {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad entity type", body: `{"entityType": "Owner"}`},
		{name: "bad date", body: `{"asOf": "2024-13-01"}`},
		{name: "not json", body: `{"lines": [`},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/rollup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			suite.router.ServeHTTP(w, req)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestSignedAmounts() {
	w, out := suite.do(http.MethodPost, "/api/v1/finance/transactions/signed-amount", map[string]any{
		"transactions": []map[string]any{
			{"id": "c1", "TransactionTypeEnum": "Charge", "TotalAmount": 1200},
			{"id": "p1", "type": "Payment", "amount": -1000},
		},
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("200", out["net"])
	suite.Len(out["transactions"], 2)
}

func (suite *HandlerTestSuite) TestLeaseBalancesCompute() {
	w, out := suite.do(http.MethodPost, "/api/v1/finance/lease-balances", map[string]any{
		"remote":       map[string]any{"balance": "125.5", "prepayments": 0, "depositsHeld": 900},
		"transactions": []map[string]any{{"id": "c1", "type": "Charge", "amount": 300}},
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("125.5", out["balance"])
	suite.Equal(false, out["computedLocally"])
	suite.Equal(true, out["remoteAvailable"])
}

func (suite *HandlerTestSuite) TestComputeGeneralLedger_FromAfterTo() {
	w, _ := suite.do(http.MethodPost, "/api/v1/finance/general-ledger", map[string]any{
		"from": "2024-04-01",
		"to":   "2024-03-01",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Stored-data routes ---

func (suite *HandlerTestSuite) TestPropertyFinancials_Success() {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.propertySvc.On("PropertyFinancials", mock.Anything, "p1", asOf).Return(&domain.PropertyFinancials{
		PropertyID: "p1",
		Result: domain.RollupResult{
			Snapshot:    domain.FinancialSnapshot{CashBalance: decimal.NewFromInt(1500), AsOf: asOf},
			Diagnostics: domain.RollupDiagnostics{UsedBankBalance: true, BankLineCount: 1},
		},
		BankLines: []domain.TransactionLine{{ID: "l1", Amount: decimal.NewFromInt(1500), PostingType: domain.Debit}},
	}, nil).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/properties/p1/financials?asOf=2024-03-15", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("p1", out["propertyID"])
	suite.Equal("1500", out["fin"].(map[string]any)["cash_balance"])
	suite.Equal(true, out["debug"].(map[string]any)["usedBankBalance"])
	suite.Len(out["bankLines"], 1)
}

func (suite *HandlerTestSuite) TestPropertyFinancials_DefaultAsOfIsZero() {
	suite.propertySvc.On("PropertyFinancials", mock.Anything, "p1", time.Time{}).
		Return(&domain.PropertyFinancials{PropertyID: "p1"}, nil).Once()

	w, _ := suite.do(http.MethodGet, "/api/v1/properties/p1/financials", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPropertyFinancials_InvalidAsOf() {
	w, _ := suite.do(http.MethodGet, "/api/v1/properties/p1/financials?asOf=yesterday", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.propertySvc.AssertNotCalled(suite.T(), "PropertyFinancials", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPropertyFinancials_NotFound() {
	suite.propertySvc.On("PropertyFinancials", mock.Anything, "missing", mock.Anything).
		Return(nil, fmt.Errorf("failed to load property: %w", apperrors.ErrNotFound)).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/properties/missing/financials", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(out["error"], "not found")
}

func (suite *HandlerTestSuite) TestUnitFinancials_InternalError() {
	suite.propertySvc.On("UnitFinancials", mock.Anything, "u1", mock.Anything).
		Return(nil, fmt.Errorf("connection reset")).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/units/u1/financials", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to compute unit financials", out["error"])
}

func (suite *HandlerTestSuite) TestUnitFinancials_Success() {
	suite.propertySvc.On("UnitFinancials", mock.Anything, "u1", mock.Anything).
		Return(&domain.RollupResult{Snapshot: domain.FinancialSnapshot{Reserve: decimal.NewFromInt(300)}}, nil).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/units/u1/financials?asOf=2024-01-31", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("u1", out["unitID"])
	suite.Equal("300", out["fin"].(map[string]any)["reserve"])
}

func (suite *HandlerTestSuite) TestGeneralLedger_PassesFilters() {
	suite.ledgerSvc.On("GeneralLedger", mock.Anything, mock.MatchedBy(func(q domain.LedgerQuery) bool {
		return q.Basis == domain.BasisCash &&
			q.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			q.To.IsZero() &&
			len(q.PropertyIDs) == 3 && q.PropertyIDs[2] == "p3" &&
			len(q.GLAccountIDs) == 1
	})).Return(&domain.GeneralLedger{
		Basis: domain.BasisCash,
		Groups: []domain.LedgerGroup{{
			ID:    "gl-bank",
			Name:  "Operating Bank",
			Type:  domain.Asset,
			Prior: decimal.NewFromInt(10),
			Net:   decimal.NewFromInt(5),
		}},
	}, nil).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/ledger?from=2024-01-01&basis=cash&propertyIds=p1,p2&propertyIds=p3&glAccountIds=gl-bank", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("cash", out["basis"])
	groups := out["groups"].([]any)
	suite.Require().Len(groups, 1)
	suite.Equal("15", groups[0].(map[string]any)["ending"])
}

func (suite *HandlerTestSuite) TestGeneralLedger_ServiceValidationError() {
	suite.ledgerSvc.On("GeneralLedger", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: from is after to", apperrors.ErrValidation)).Once()

	w, _ := suite.do(http.MethodGet, "/api/v1/ledger?from=2024-02-01&to=2024-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLeaseBalances_Success() {
	suite.leaseSvc.On("LeaseBalances", mock.Anything, "lease-1").Return(&domain.LeaseBalanceReport{
		LeaseID:         "lease-1",
		Balances:        domain.LeaseBalances{Balance: decimal.NewFromInt(250), ComputedLocally: true},
		RemoteAvailable: false,
		Ledger: []domain.LeaseLedgerRow{
			{TransactionID: "p1", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), RunningBalance: decimal.NewFromInt(250)},
		},
	}, nil).Once()

	w, out := suite.do(http.MethodGet, "/api/v1/leases/lease-1/balances", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("250", out["balance"])
	suite.Equal(false, out["remoteAvailable"])
	ledger := out["ledger"].([]any)
	suite.Require().Len(ledger, 1)
	suite.Equal("2024-03-05", ledger[0].(map[string]any)["date"])
}

func (suite *HandlerTestSuite) TestLeaseBalances_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "upstream", err: fmt.Errorf("fetch: %w", apperrors.ErrUpstream), status: http.StatusBadGateway},
		{name: "not found", err: fmt.Errorf("lease: %w", apperrors.ErrNotFound), status: http.StatusNotFound},
		{name: "app error", err: apperrors.NewAppError(http.StatusConflict, "lease is being synced", nil), status: http.StatusConflict},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.leaseSvc.On("LeaseBalances", mock.Anything, "lease-x").Return(nil, tt.err).Once()
			w, _ := suite.do(http.MethodGet, "/api/v1/leases/lease-x/balances", nil)
			suite.Equal(tt.status, w.Code)
		})
	}
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestComputeRoutesAreRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	leaseSvc := new(MockLeaseBalanceService)
	leaseSvc.On("LeaseBalances", mock.Anything, "l1").Return(&domain.LeaseBalanceReport{}, nil).Twice()

	err := handlers.RegisterRoutes(router, &config.Config{IsProduction: true, RateLimit: "1-M"}, &portssvc.ServiceContainer{
		PropertyFinance: new(MockPropertyFinanceService),
		Ledger:          new(MockLedgerService),
		LeaseBalance:    leaseSvc,
		Compute:         services.NewComputeService(),
	})
	require.NoError(t, err)

	serve := func(method, url, body string) int {
		req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/api/v1/finance/transactions/signed-amount", `{"transactions": []}`))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodPost, "/api/v1/finance/transactions/signed-amount", `{"transactions": []}`))

	// stored-data routes are not limited
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/v1/leases/l1/balances", ""))
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/v1/leases/l1/balances", ""))
	leaseSvc.AssertExpectations(t)
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	err := handlers.RegisterRoutes(gin.New(), &config.Config{RateLimit: "lots"}, &portssvc.ServiceContainer{})
	assert.Error(t, err)
}
