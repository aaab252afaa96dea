package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// syncRunner runs jobs on the calling goroutine.
type syncRunner struct {
	err error
}

func (r syncRunner) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(ctx)
}

// --- Mock CheckoutService ---
type MockCheckoutService struct {
	mock.Mock
}

func snapshotResult(args mock.Arguments) (*domain.CounterSnapshot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterSnapshot), args.Error(1)
}

func (m *MockCheckoutService) JoinQueue(ctx context.Context, counterID, customerID string, cart []domain.CartItem) (int, error) {
	args := m.Called(ctx, counterID, customerID, cart)
	return args.Int(0), args.Error(1)
}
func (m *MockCheckoutService) LeaveQueue(ctx context.Context, counterID, customerID string) error {
	args := m.Called(ctx, counterID, customerID)
	return args.Error(0)
}
func (m *MockCheckoutService) QueuePosition(ctx context.Context, counterID, customerID string) (int, error) {
	args := m.Called(ctx, counterID, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockCheckoutService) ListCounters(ctx context.Context) []domain.CounterSnapshot {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CounterSnapshot)
}
func (m *MockCheckoutService) GetCounter(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) ServeNext(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) ItemsPlaced(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) Scan(ctx context.Context, counterID, itemID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID, itemID))
}
func (m *MockCheckoutService) DrawChange(ctx context.Context, counterID string, cents int) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID, cents))
}
func (m *MockCheckoutService) UndoChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) ClearChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) ConfirmChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) EnterCardAmount(ctx context.Context, counterID string, amount decimal.Decimal) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID, amount))
}
func (m *MockCheckoutService) Abandon(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	return snapshotResult(m.Called(ctx, counterID))
}
func (m *MockCheckoutService) Tick(ctx context.Context, dt time.Duration) {
	m.Called(ctx, dt)
}
func (m *MockCheckoutService) HasCounter(counterID string) bool {
	return m.Called(counterID).Bool(0)
}
func (m *MockCheckoutService) IsStaffed(counterID string) bool {
	return m.Called(counterID).Bool(0)
}
func (m *MockCheckoutService) SetCashier(ctx context.Context, counterID string, staffed bool) error {
	return m.Called(ctx, counterID, staffed).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CheckoutSvcFacade = (*MockCheckoutService)(nil)

// --- Mock StaffService ---
type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockStaffService) HireCashier(ctx context.Context, counterID string) (*domain.Employee, error) {
	args := m.Called(ctx, counterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockStaffService) FireCashier(ctx context.Context, counterID string) error {
	return m.Called(ctx, counterID).Error(0)
}
func (m *MockStaffService) RestoreStaffing(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.StaffSvc = (*MockStaffService)(nil)

// --- Mock BillingService ---
type MockBillingService struct {
	mock.Mock
}

func billsResult(args mock.Arguments) ([]domain.Bill, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return billsResult(m.Called(ctx))
}
func (m *MockBillingService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillingService) TotalDue(ctx context.Context, day int) (decimal.Decimal, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockBillingService) Sweep(ctx context.Context, day int) (*domain.SweepResult, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepResult), args.Error(1)
}
func (m *MockBillingService) IssueRecurring(ctx context.Context, day int) ([]domain.Bill, error) {
	return billsResult(m.Called(ctx, day))
}
func (m *MockBillingService) IssueBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillingService) PayBill(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillingService) PayAll(ctx context.Context) ([]domain.Bill, error) {
	return billsResult(m.Called(ctx))
}

var _ portssvc.BillingSvcFacade = (*MockBillingService)(nil)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) ListTemplates(ctx context.Context) []domain.LoanTemplate {
	return m.Called(ctx).Get(0).([]domain.LoanTemplate)
}
func (m *MockLoanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) TakeLoan(ctx context.Context, templateName string) (*domain.Loan, error) {
	args := m.Called(ctx, templateName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ServiceLoans(ctx context.Context, day int) ([]domain.Bill, error) {
	return billsResult(m.Called(ctx, day))
}

var _ portssvc.LoanSvc = (*MockLoanService)(nil)

// --- Mock DayService ---
type MockDayService struct {
	mock.Mock
}

func (m *MockDayService) CurrentDay(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockDayService) AdvanceDay(ctx context.Context) (*domain.DayReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayReport), args.Error(1)
}
func (m *MockDayService) ProcessDay(ctx context.Context, day int) (*domain.DayReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayReport), args.Error(1)
}

var _ portssvc.DaySvc = (*MockDayService)(nil)
