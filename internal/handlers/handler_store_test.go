package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/storefront_sim/internal/adapters/random"
	"github.com/SscSPs/storefront_sim/internal/adapters/telemetry"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/handlers"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/SscSPs/storefront_sim/internal/platform/eventbus"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	progress *telemetry.ProgressCounters
	token    string
}

func (suite *StoreHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	repos := memory.NewRepositoryProvider(decimal.NewFromInt(1000), []domain.Product{
		{ProductID: "milk", Name: "Milk", MarketPrice: decimal.RequireFromString("3.25")},
	})
	bus := eventbus.New(slog.Default())
	rng := random.NewSource(1)
	change, err := services.NewChangeService(rng)
	suite.Require().NoError(err)

	wallet := services.NewWalletService(repos.WalletRepo, bus)
	pricing := services.NewPricingService(repos.ProductRepo)
	checkout := services.NewCheckoutService(services.CheckoutConfig{}, change, pricing, wallet, rng, bus)
	billing := services.NewBillingService(repos.BillRepo, repos.StateRepo, wallet, bus)
	loans := services.NewLoanService(repos.LoanRepo, repos.StateRepo, wallet, billing, bus)
	staff := services.NewStaffService(repos.EmployeeRepo, repos.StateRepo, checkout, wallet,
		services.StaffTerms{HiringFee: decimal.NewFromInt(100), DailyWage: decimal.NewFromInt(30)})
	container := &portssvc.ServiceContainer{
		Pricing: pricing,
		Staff:   staff,
		Store:   services.NewStoreService(repos.StateRepo, wallet, billing, loans, staff, decimal.NewFromInt(500)),
	}
	suite.progress = telemetry.NewProgressCounters()

	token, _, err := utils.GenerateSessionToken("operator-1", testJWTSecret, time.Hour, "storefront-test")
	suite.Require().NoError(err)
	suite.token = token

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterStoreRoutes(v1, container, suite.progress, syncRunner{})
}

func (suite *StoreHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, stringsReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StoreHandlerTestSuite) TestExpand() {
	w := suite.do(http.MethodPost, "/api/v1/store/expand", "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var status domain.StoreStatus
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &status))
	suite.Equal(1, status.ExpansionLevel)
	suite.True(status.Balance.Equal(decimal.NewFromInt(500)))

	w = suite.do(http.MethodPost, "/api/v1/store/expand", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *StoreHandlerTestSuite) TestSetAndClearPrice() {
	w := suite.do(http.MethodPut, "/api/v1/products/milk/price", `{"price":"2.99"}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var res dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.EffectivePrice.Equal(decimal.RequireFromString("2.99")))

	w = suite.do(http.MethodPut, "/api/v1/products/caviar/price", `{"price":"2.99"}`)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/products/milk/price", `{"price":"-1"}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/products/milk/price", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	res = dto.ProductResponse{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Nil(res.CustomPrice)
	suite.True(res.EffectivePrice.Equal(decimal.RequireFromString("3.25")))
}

func (suite *StoreHandlerTestSuite) TestListEmployeesEmpty() {
	w := suite.do(http.MethodGet, "/api/v1/employees", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *StoreHandlerTestSuite) TestProgress() {
	suite.progress.RecordRevenue("milk", decimal.RequireFromString("3.25"))
	suite.progress.RecordItemSold("milk")

	w := suite.do(http.MethodGet, "/api/v1/progress", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var snap telemetry.ProgressSnapshot
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	suite.Equal(1, snap.ItemsSold)
	suite.Equal(1, snap.Products["milk"].ItemsSold)
}

func TestStoreHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}
