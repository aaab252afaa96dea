package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	events   *recordingEvents
	repos    portsrepo.RepositoryProvider
	staffers *failingEmployeeRepo
	wallet   portssvc.WalletSvc
	checkout portssvc.CheckoutSvcFacade
	billing  portssvc.BillingSvcFacade
	loans    portssvc.LoanSvc
	staff    portssvc.StaffSvc
	store    portssvc.StoreSvc
}

func (suite *StoreServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.events = &recordingEvents{}
	suite.build(money("1000"))
}

func (suite *StoreServiceTestSuite) build(balance decimal.Decimal) {
	suite.repos = memory.NewRepositoryProvider(balance, testProducts())
	suite.staffers = &failingEmployeeRepo{EmployeeRepository: memory.NewEmployeeRepository()}
	suite.repos.EmployeeRepo = suite.staffers
	rng := &scriptedRandom{}
	change, err := services.NewChangeService(rng)
	suite.Require().NoError(err)
	suite.wallet = services.NewWalletService(suite.repos.WalletRepo, suite.events)
	suite.checkout = services.NewCheckoutService(
		services.CheckoutConfig{CounterIDs: []string{"counter-1", "counter-2"}, AutoScanInterval: time.Second},
		change,
		services.NewPricingService(suite.repos.ProductRepo),
		suite.wallet,
		rng,
		suite.events,
	)
	suite.billing = services.NewBillingService(suite.repos.BillRepo, suite.repos.StateRepo, suite.wallet, suite.events)
	suite.loans = services.NewLoanService(suite.repos.LoanRepo, suite.repos.StateRepo, suite.wallet, suite.billing, suite.events)
	suite.staff = services.NewStaffService(
		suite.repos.EmployeeRepo,
		suite.repos.StateRepo,
		suite.checkout,
		suite.wallet,
		services.StaffTerms{HiringFee: money("200"), DailyWage: money("30")},
	)
	suite.store = services.NewStoreService(
		suite.repos.StateRepo,
		suite.wallet,
		suite.billing,
		suite.loans,
		suite.staff,
		money("500"),
	)
}

func (suite *StoreServiceTestSuite) TestHireCashier() {
	employee, err := suite.staff.HireCashier(suite.ctx, "counter-1")
	suite.Require().NoError(err)
	suite.Equal("counter-1", employee.CounterID)
	suite.Equal(1, employee.HiredDay)
	suite.True(employee.DailyWage.Equal(money("30")))
	suite.True(suite.checkout.IsStaffed("counter-1"))

	balance, _ := suite.wallet.Balance(suite.ctx)
	suite.True(balance.Equal(money("800")))

	_, err = suite.staff.HireCashier(suite.ctx, "counter-1")
	suite.ErrorIs(err, services.ErrCounterAlreadyStaffed)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.staff.HireCashier(suite.ctx, "counter-9")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	employees, err := suite.staff.ListEmployees(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(employees, 1)
}

func (suite *StoreServiceTestSuite) TestHireCashier_InsufficientFunds() {
	suite.build(money("50"))

	_, err := suite.staff.HireCashier(suite.ctx, "counter-1")
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.False(suite.checkout.IsStaffed("counter-1"))

	employees, _ := suite.staff.ListEmployees(suite.ctx)
	suite.Empty(employees)
}

func (suite *StoreServiceTestSuite) TestHireCashier_RefundsWhenSaveFails() {
	suite.staffers.failSave = 1

	_, err := suite.staff.HireCashier(suite.ctx, "counter-1")
	suite.ErrorIs(err, errStoreDown)
	suite.False(suite.checkout.IsStaffed("counter-1"))
	balance, _ := suite.wallet.Balance(suite.ctx)
	suite.True(balance.Equal(money("1000")), "balance %s", balance)

	_, err = suite.staff.HireCashier(suite.ctx, "counter-1")
	suite.Require().NoError(err)
	balance, _ = suite.wallet.Balance(suite.ctx)
	suite.True(balance.Equal(money("800")))
}

func (suite *StoreServiceTestSuite) TestFireCashier() {
	_, err := suite.staff.HireCashier(suite.ctx, "counter-2")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.staff.FireCashier(suite.ctx, "counter-2"))
	suite.False(suite.checkout.IsStaffed("counter-2"))

	err = suite.staff.FireCashier(suite.ctx, "counter-2")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreServiceTestSuite) TestRestoreStaffing() {
	suite.Require().NoError(suite.repos.EmployeeRepo.SaveEmployee(suite.ctx, domain.Employee{
		EmployeeID: "emp-1", CounterID: "counter-2", DailyWage: money("30"),
	}))
	suite.Require().NoError(suite.repos.EmployeeRepo.SaveEmployee(suite.ctx, domain.Employee{
		EmployeeID: "emp-2", CounterID: "closed-counter", DailyWage: money("30"),
	}))

	suite.Require().NoError(suite.staff.RestoreStaffing(suite.ctx))
	suite.True(suite.checkout.IsStaffed("counter-2"))
	suite.False(suite.checkout.IsStaffed("counter-1"))
}

func (suite *StoreServiceTestSuite) TestStatusAndExpand() {
	_, err := suite.billing.IssueBill(suite.ctx, domain.Bill{
		Type: domain.BillRent, IssueDay: 1, DueDay: 3, Amount: money("150"), LatePenalty: money("25"),
	})
	suite.Require().NoError(err)

	status, err := suite.store.Status(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, status.Day)
	suite.Equal(0, status.ExpansionLevel)
	suite.True(status.NextExpansion.Equal(money("500")))
	suite.Equal(1, status.ActiveBills)
	suite.True(status.TotalDue.Equal(money("150")))

	status, err = suite.store.Expand(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, status.ExpansionLevel)
	suite.True(status.Balance.Equal(money("500")))
	suite.True(status.NextExpansion.Equal(money("1000")))

	_, err = suite.store.Expand(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	level, _ := suite.repos.StateRepo.GetExpansionLevel(suite.ctx)
	suite.Equal(1, level)
}

func TestStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}

func TestWalletService(t *testing.T) {
	ctx := context.Background()
	events := &recordingEvents{}
	wallet := services.NewWalletService(memory.NewWalletRepository(money("20")), events)

	_, err := wallet.TryDebit(ctx, money("25"), "test")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	balance, err := wallet.TryDebit(ctx, money("20"), "test")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = wallet.ForceDebit(ctx, money("5.50"), "test")
	require.NoError(t, err)
	assert.True(t, balance.Equal(money("-5.50")))

	balance, err = wallet.Credit(ctx, money("10"), "test")
	require.NoError(t, err)
	assert.True(t, balance.Equal(money("4.50")))

	_, err = wallet.Credit(ctx, money("-1"), "test")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = wallet.ForceDebit(ctx, money("-1"), "test")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	changes := events.named("money_changed")
	require.Len(t, changes, 3)
	last := changes[2].(domain.MoneyChanged)
	assert.True(t, last.Delta.Equal(money("10")))
	assert.True(t, last.Balance.Equal(money("4.50")))
}

func TestPricingService(t *testing.T) {
	ctx := context.Background()
	pricing := services.NewPricingService(memory.NewProductRepository(testProducts()))

	price, err := pricing.PriceOf(ctx, "milk")
	require.NoError(t, err)
	assert.True(t, price.Equal(money("3.25")))

	product, err := pricing.SetCustomPrice(ctx, "milk", money("3.499"))
	require.NoError(t, err)
	require.NotNil(t, product.CustomPrice)
	assert.True(t, product.CustomPrice.Equal(money("3.50")))

	price, _ = pricing.PriceOf(ctx, "milk")
	assert.True(t, price.Equal(money("3.50")))

	_, err = pricing.SetCustomPrice(ctx, "milk", decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = pricing.SetCustomPrice(ctx, "caviar", money("1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	product, err = pricing.ClearCustomPrice(ctx, "milk")
	require.NoError(t, err)
	assert.Nil(t, product.CustomPrice)
	price, _ = pricing.PriceOf(ctx, "milk")
	assert.True(t, price.Equal(money("3.25")))

	products, err := pricing.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}
