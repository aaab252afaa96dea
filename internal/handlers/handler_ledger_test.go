package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/handlers"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockBilling *MockBillingService
	mockLoans   *MockLoanService
	mockDays    *MockDayService
	token       string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockBilling = new(MockBillingService)
	suite.mockLoans = new(MockLoanService)
	suite.mockDays = new(MockDayService)

	token, _, err := utils.GenerateSessionToken("operator-1", testJWTSecret, time.Hour, "storefront-test")
	suite.Require().NoError(err)
	suite.token = token

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterLedgerRoutes(v1, suite.mockBilling, suite.mockLoans, suite.mockDays, syncRunner{})
}

func (suite *LedgerHandlerTestSuite) TearDownTest() {
	suite.mockBilling.AssertExpectations(suite.T())
	suite.mockLoans.AssertExpectations(suite.T())
	suite.mockDays.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, stringsReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func rentBill(id string, issue int) domain.Bill {
	return domain.Bill{
		BillID:          id,
		Type:            domain.BillRent,
		IssueDay:        issue,
		DueDay:          issue + 3,
		GracePeriodDays: 2,
		Amount:          decimal.NewFromInt(150),
		LatePenalty:     decimal.NewFromInt(25),
		Status:          domain.BillUnpaid,
	}
}

func (suite *LedgerHandlerTestSuite) TestListBills_RendersStatusForCurrentDay() {
	suite.mockDays.On("CurrentDay", mock.Anything).Return(8, nil).Once()
	suite.mockBilling.On("ListBills", mock.Anything).Return([]domain.Bill{rentBill("b1", 7), rentBill("b0", 4)}, nil).Once()
	suite.mockBilling.On("TotalDue", mock.Anything, 8).Return(decimal.NewFromInt(325), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bills", "")
	suite.Equal(http.StatusOK, w.Code)

	var res dto.ListBillsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(8, res.Day)
	suite.True(res.TotalDue.Equal(decimal.NewFromInt(325)))
	suite.Require().Len(res.Bills, 2)
	suite.Equal("2 days left", res.Bills[0].StatusText)
	suite.Equal("grace ends tomorrow", res.Bills[1].StatusText)
	suite.True(res.Bills[1].TotalDue.Equal(decimal.NewFromInt(175)))
}

func (suite *LedgerHandlerTestSuite) TestPayBill_InsufficientFunds() {
	suite.mockBilling.On("PayBill", mock.Anything, "b1").
		Return(nil, fmt.Errorf("%w: balance 10.00", apperrors.ErrInsufficientFunds)).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b1/pay", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestPayBill_AlreadySettled() {
	suite.mockBilling.On("PayBill", mock.Anything, "b1").Return(nil, services.ErrBillAlreadySettled).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b1/pay", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestPayBill_Success() {
	paid := rentBill("b1", 7)
	paid.Status = domain.BillPaid
	paid.SettledDay = 8
	suite.mockBilling.On("PayBill", mock.Anything, "b1").Return(&paid, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b1/pay", "")
	suite.Equal(http.StatusOK, w.Code)

	var res dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("paid", res.StatusText)
	suite.True(res.TotalDue.IsZero())
}

func (suite *LedgerHandlerTestSuite) TestTakeLoan_Duplicate() {
	suite.mockLoans.On("TakeLoan", mock.Anything, "Small business loan").Return(nil, services.ErrLoanAlreadyActive).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans", `{"name":"Small business loan"}`)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestTakeLoan_Created() {
	loan := domain.DefaultLoanTemplates()[0].NewLoan("loan-1", 2)
	suite.mockLoans.On("TakeLoan", mock.Anything, loan.Name).Return(&loan, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans", `{"name":"Small business loan"}`)
	suite.Equal(http.StatusCreated, w.Code)

	var res dto.LoanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.PaymentAmount.Equal(decimal.NewFromInt(300)))
	suite.Equal(2, res.NextPaymentDay)
}

func (suite *LedgerHandlerTestSuite) TestTakeLoan_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/loans", `{}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAdvanceDay() {
	charged := rentBill("b0", 1)
	charged.Status = domain.BillCharged
	suite.mockDays.On("AdvanceDay", mock.Anything).Return(&domain.DayReport{Day: 7, Charged: []domain.Bill{charged}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/days/advance", "")
	suite.Equal(http.StatusOK, w.Code)

	var res dto.DayReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(7, res.Day)
	suite.Require().Len(res.Charged, 1)
	suite.Equal("charged", res.Charged[0].StatusText)
	suite.Empty(res.Issued)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
