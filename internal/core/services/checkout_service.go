package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout errors. Every rejected call leaves the counter untouched.
var (
	ErrCounterNotFound      = fmt.Errorf("%w: counter not found", apperrors.ErrNotFound)
	ErrCustomerNotQueued    = fmt.Errorf("%w: customer is not in line", apperrors.ErrNotFound)
	ErrItemNotPending       = fmt.Errorf("%w: item is not waiting to be scanned", apperrors.ErrNotFound)
	ErrCounterBusy          = fmt.Errorf("%w: counter already has an active transaction", apperrors.ErrInvalidState)
	ErrInvalidCounterState  = fmt.Errorf("%w: counter is not in the required state", apperrors.ErrInvalidState)
	ErrQueueEmpty           = fmt.Errorf("%w: no customer is waiting", apperrors.ErrInvalidState)
	ErrCustomerInService    = fmt.Errorf("%w: customer is being served", apperrors.ErrInvalidState)
	ErrIncorrectChange      = fmt.Errorf("%w: change does not cover what is owed", apperrors.ErrValidation)
	ErrIncorrectCardAmount  = fmt.Errorf("%w: card amount must equal the total", apperrors.ErrValidation)
	ErrNotADenomination     = fmt.Errorf("%w: not a known denomination", apperrors.ErrValidation)
	ErrChangeExceedsBalance = fmt.Errorf("%w: change would exceed the balance", apperrors.ErrInsufficientFunds)
)

// DefaultCashProbability is the chance a customer pays cash.
const DefaultCashProbability = 0.6

// CheckoutConfig holds the tunables of the counters.
type CheckoutConfig struct {
	CounterIDs        []string
	AutoScanInterval  time.Duration
	AutoSettleDelay   time.Duration
	QueuePollInterval time.Duration
	CashProbability   float64
}

type counter struct {
	id        string
	state     domain.CounterState
	txn       *domain.CheckoutTransaction
	cashier   bool
	timer     time.Duration
	display   string
	queue     CheckoutQueue
	carts     map[string][]domain.CartItem
	followers map[string]*QueueFollower
}

func (c *counter) reset() {
	c.state = domain.CounterStandby
	c.txn = nil
	c.timer = 0
}

func (c *counter) snapshot() domain.CounterSnapshot {
	snap := domain.CounterSnapshot{
		CounterID:      c.id,
		State:          c.state,
		CashierStaffed: c.cashier,
		Display:        c.display,
		Queue:          c.queue.Customers(),
	}
	if c.txn != nil {
		txn := *c.txn
		txn.PendingItems = slices.Clone(c.txn.PendingItems)
		txn.ScannedItems = slices.Clone(c.txn.ScannedItems)
		txn.TenderedChange = slices.Clone(c.txn.TenderedChange)
		snap.Transaction = &txn
	}
	return snap
}

type checkoutService struct {
	BaseService
	cfg       CheckoutConfig
	counters  map[string]*counter
	order     []string
	change    portssvc.ChangeSvc
	pricing   portssvc.PricingSvc
	wallet    portssvc.WalletSvc
	rng       ports.RandomSource
	events    ports.EventPublisher
	progress  ports.ProgressTracker
	presenter ports.Presenter
	newID     func() string
}

// CheckoutOption configures the checkout service
type CheckoutOption func(*checkoutService)

// WithProgressTracker sets the goal tracker fed by scans and completions.
func WithProgressTracker(tracker ports.ProgressTracker) CheckoutOption {
	return func(s *checkoutService) {
		s.progress = tracker
	}
}

// WithPresenter sets the sink for sounds, messages and monitor text.
func WithPresenter(presenter ports.Presenter) CheckoutOption {
	return func(s *checkoutService) {
		s.presenter = presenter
	}
}

// WithIDGenerator replaces the transaction and change token id generator.
func WithIDGenerator(newID func() string) CheckoutOption {
	return func(s *checkoutService) {
		s.newID = newID
	}
}

// NewCheckoutService creates the counters named in cfg, all in Standby.
func NewCheckoutService(
	cfg CheckoutConfig,
	change portssvc.ChangeSvc,
	pricing portssvc.PricingSvc,
	wallet portssvc.WalletSvc,
	rng ports.RandomSource,
	events ports.EventPublisher,
	options ...CheckoutOption,
) portssvc.CheckoutSvcFacade {
	if len(cfg.CounterIDs) == 0 {
		cfg.CounterIDs = []string{"counter-1"}
	}
	if cfg.CashProbability == 0 {
		cfg.CashProbability = DefaultCashProbability
	}
	if cfg.QueuePollInterval <= 0 {
		cfg.QueuePollInterval = DefaultQueuePollInterval
	}

	svc := &checkoutService{
		cfg:       cfg,
		counters:  make(map[string]*counter, len(cfg.CounterIDs)),
		change:    change,
		pricing:   pricing,
		wallet:    wallet,
		rng:       rng,
		events:    events,
		progress:  nopProgressTracker{},
		presenter: nopPresenter{},
		newID:     uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	for _, id := range cfg.CounterIDs {
		if _, dup := svc.counters[id]; dup {
			continue
		}
		svc.counters[id] = &counter{
			id:        id,
			state:     domain.CounterStandby,
			carts:     make(map[string][]domain.CartItem),
			followers: make(map[string]*QueueFollower),
		}
		svc.order = append(svc.order, id)
	}
	return svc
}

var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

func (s *checkoutService) lookup(counterID string) (*counter, error) {
	c, ok := s.counters[counterID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCounterNotFound, counterID)
	}
	return c, nil
}

func (s *checkoutService) requireState(c *counter, want ...domain.CounterState) error {
	if slices.Contains(want, c.state) {
		return nil
	}
	return fmt.Errorf("%w: counter %s is %s", ErrInvalidCounterState, c.id, c.state)
}

func (s *checkoutService) show(c *counter, text string) {
	c.display = text
	s.presenter.UpdateMonitor(c.id, text)
}

func (s *checkoutService) HasCounter(counterID string) bool {
	_, ok := s.counters[counterID]
	return ok
}

func (s *checkoutService) IsStaffed(counterID string) bool {
	c, ok := s.counters[counterID]
	return ok && c.cashier
}

func (s *checkoutService) SetCashier(ctx context.Context, counterID string, staffed bool) error {
	c, err := s.lookup(counterID)
	if err != nil {
		return err
	}
	c.cashier = staffed
	c.timer = 0
	s.LogInfo(ctx, "Counter staffing changed", slog.String("counter_id", counterID), slog.Bool("staffed", staffed))
	return nil
}

func (s *checkoutService) ListCounters(ctx context.Context) []domain.CounterSnapshot {
	out := make([]domain.CounterSnapshot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.counters[id].snapshot())
	}
	return out
}

func (s *checkoutService) GetCounter(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) JoinQueue(ctx context.Context, counterID, customerID string, cart []domain.CartItem) (int, error) {
	if customerID == "" {
		return -1, fmt.Errorf("%w: customer id is required", apperrors.ErrValidation)
	}
	c, err := s.lookup(counterID)
	if err != nil {
		return -1, err
	}
	if pos := c.queue.Position(customerID); pos >= 0 {
		return pos, nil
	}
	pos := c.queue.Join(customerID)
	c.carts[customerID] = slices.Clone(cart)
	c.followers[customerID] = NewQueueFollower(&c.queue, customerID, s.cfg.QueuePollInterval)
	s.LogDebug(ctx, "Customer joined queue",
		slog.String("counter_id", counterID),
		slog.String("customer_id", customerID),
		slog.Int("position", pos))
	return pos, nil
}

func (s *checkoutService) LeaveQueue(ctx context.Context, counterID, customerID string) error {
	c, err := s.lookup(counterID)
	if err != nil {
		return err
	}
	if c.txn != nil && c.txn.CustomerID == customerID {
		return ErrCustomerInService
	}
	if !c.queue.Leave(customerID) {
		return ErrCustomerNotQueued
	}
	delete(c.carts, customerID)
	delete(c.followers, customerID)
	return nil
}

func (s *checkoutService) QueuePosition(ctx context.Context, counterID, customerID string) (int, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return -1, err
	}
	return c.queue.Position(customerID), nil
}

func (s *checkoutService) ServeNext(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if c.state != domain.CounterStandby {
		return nil, ErrCounterBusy
	}
	customerID, ok := c.queue.Front()
	if !ok {
		return nil, ErrQueueEmpty
	}
	s.begin(ctx, c, customerID)
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) begin(ctx context.Context, c *counter, customerID string) {
	c.txn = &domain.CheckoutTransaction{
		TransactionID: s.newID(),
		CustomerID:    customerID,
		PendingItems:  slices.Clone(c.carts[customerID]),
		TotalPrice:    decimal.Zero,
	}
	c.state = domain.CounterPlacing
	c.timer = 0
	delete(c.followers, customerID)
	s.show(c, "Welcome")
	s.LogInfo(ctx, "Transaction started",
		slog.String("counter_id", c.id),
		slog.String("transaction_id", c.txn.TransactionID),
		slog.String("customer_id", customerID),
		slog.Int("items", len(c.txn.PendingItems)))
}

func (s *checkoutService) ItemsPlaced(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterPlacing); err != nil {
		return nil, err
	}
	c.timer = 0
	if len(c.txn.PendingItems) == 0 {
		s.selectPayment(ctx, c)
	} else {
		c.state = domain.CounterScanning
		s.show(c, "Total: "+utils.FormatMoney(c.txn.TotalPrice))
	}
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) Scan(ctx context.Context, counterID, itemID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterScanning); err != nil {
		return nil, err
	}
	if err := s.scanItem(ctx, c, itemID); err != nil {
		return nil, err
	}
	snap := c.snapshot()
	return &snap, nil
}

// scanItem accrues one pending item. An empty itemID scans the next item in line.
func (s *checkoutService) scanItem(ctx context.Context, c *counter, itemID string) error {
	item, ok := c.txn.TakePending(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotPending, itemID)
	}

	price, err := s.pricing.PriceOf(ctx, item.ProductID)
	if err != nil {
		s.LogWarn(ctx, "Price lookup failed, item scanned at zero",
			slog.String("product_id", item.ProductID),
			slog.String("error", err.Error()))
		price = decimal.Zero
	}

	c.txn.ScannedItems = append(c.txn.ScannedItems, domain.ScannedItem{
		ItemID:      item.ItemID,
		ProductID:   item.ProductID,
		PriceAtSale: price,
	})
	c.txn.TotalPrice = c.txn.TotalPrice.Add(price)
	s.progress.RecordRevenue(item.ProductID, price)
	s.progress.RecordItemSold(item.ProductID)
	s.presenter.PlaySound(ports.SoundScan)
	s.show(c, "Total: "+utils.FormatMoney(c.txn.TotalPrice))

	if len(c.txn.PendingItems) == 0 {
		s.selectPayment(ctx, c)
	}
	return nil
}

func (s *checkoutService) selectPayment(ctx context.Context, c *counter) {
	c.timer = 0
	total := c.txn.TotalPrice
	if s.rng.Float64() < s.cfg.CashProbability {
		c.txn.PaymentMethod = domain.PaymentCash
		c.txn.CustomerTenderedAmount = s.change.GeneratePlausiblePayment(total)
		c.state = domain.CounterCashPay
		s.show(c, fmt.Sprintf("Total: %s  Cash: %s  Change: %s",
			utils.FormatMoney(total),
			utils.FormatMoney(c.txn.CustomerTenderedAmount),
			utils.FormatMoney(c.txn.ChangeOwed())))
	} else {
		c.txn.PaymentMethod = domain.PaymentCard
		c.txn.CustomerTenderedAmount = total
		c.state = domain.CounterCardPay
		s.show(c, "Total: "+utils.FormatMoney(total)+"  Card")
	}
	s.LogDebug(ctx, "Payment method selected",
		slog.String("counter_id", c.id),
		slog.String("method", string(c.txn.PaymentMethod)),
		slog.String("total", total.String()),
		slog.String("tendered", c.txn.CustomerTenderedAmount.String()))
}

func (s *checkoutService) DrawChange(ctx context.Context, counterID string, cents int) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterCashPay); err != nil {
		return nil, err
	}
	if !slices.Contains(s.change.Denominations(), cents) {
		return nil, fmt.Errorf("%w: %d", ErrNotADenomination, cents)
	}

	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		return nil, err
	}
	given := c.txn.ChangeGiven().Add(domain.FromCents(int64(cents)))
	if given.GreaterThan(balance) {
		s.presenter.PlaySound(ports.SoundError)
		s.presenter.LogMessage("Not enough money to give that change", "red")
		return nil, ErrChangeExceedsBalance
	}

	c.txn.PushChange(domain.TenderedChange{Denomination: cents, TokenID: s.newID()})
	s.presenter.PlaySound(ports.SoundCashDrawer)
	s.showChange(c)
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) showChange(c *counter) {
	s.show(c, fmt.Sprintf("Change: %s of %s",
		utils.FormatMoney(c.txn.ChangeGiven()),
		utils.FormatMoney(c.txn.ChangeOwed())))
}

func (s *checkoutService) UndoChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterCashPay); err != nil {
		return nil, err
	}
	if _, ok := c.txn.PopChange(); ok {
		s.showChange(c)
	}
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) ClearChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterCashPay); err != nil {
		return nil, err
	}
	c.txn.ClearChange()
	s.showChange(c)
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) ConfirmChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterCashPay); err != nil {
		return nil, err
	}

	txn := c.txn
	if !s.change.VerifyChange(txn.ChangeCents(), txn.CustomerTenderedAmount, txn.TotalPrice) {
		s.presenter.PlaySound(ports.SoundError)
		s.presenter.LogMessage("That is not the right change", "red")
		return nil, fmt.Errorf("%w: given %s, owed %s", ErrIncorrectChange,
			txn.ChangeGiven().StringFixed(2), txn.ChangeOwed().StringFixed(2))
	}

	revenue := txn.CustomerTenderedAmount.Sub(txn.ChangeGiven())
	if _, err := s.wallet.Credit(ctx, revenue, "cash sale"); err != nil {
		s.LogError(ctx, err, "Failed to credit cash sale", slog.String("counter_id", c.id))
		return nil, err
	}
	s.presenter.PlaySound(ports.SoundChangeReturned)
	s.complete(ctx, c, revenue, false)
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) EnterCardAmount(ctx context.Context, counterID string, amount decimal.Decimal) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if err := s.requireState(c, domain.CounterCardPay); err != nil {
		return nil, err
	}
	if !amount.Equal(c.txn.TotalPrice) {
		s.presenter.PlaySound(ports.SoundError)
		s.presenter.LogMessage("The card amount does not match the total", "red")
		return nil, fmt.Errorf("%w: entered %s, total %s", ErrIncorrectCardAmount,
			amount.String(), c.txn.TotalPrice.String())
	}

	if _, err := s.wallet.Credit(ctx, c.txn.TotalPrice, "card sale"); err != nil {
		s.LogError(ctx, err, "Failed to credit card sale", slog.String("counter_id", c.id))
		return nil, err
	}
	s.complete(ctx, c, c.txn.TotalPrice, false)
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) Abandon(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
	c, err := s.lookup(counterID)
	if err != nil {
		return nil, err
	}
	if c.state == domain.CounterStandby {
		return nil, fmt.Errorf("%w: counter %s has no transaction", ErrInvalidCounterState, c.id)
	}
	txn := c.txn
	s.LogInfo(ctx, "Transaction abandoned",
		slog.String("counter_id", c.id),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("state", string(c.state)),
		slog.Int("change_discarded", len(txn.TenderedChange)))
	s.release(c, txn.CustomerID)
	s.show(c, "")
	snap := c.snapshot()
	return &snap, nil
}

func (s *checkoutService) complete(ctx context.Context, c *counter, revenue decimal.Decimal, automated bool) {
	txn := c.txn
	s.progress.RecordCheckoutCompleted()
	s.presenter.PlaySound(ports.SoundCheckoutComplete)
	s.LogInfo(ctx, "Transaction completed",
		slog.String("counter_id", c.id),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("method", string(txn.PaymentMethod)),
		slog.String("revenue", revenue.String()),
		slog.Bool("automated", automated))
	s.release(c, txn.CustomerID)
	s.show(c, "Thank you")
	s.events.Publish(domain.CheckoutCompleted{
		CounterID:     c.id,
		TransactionID: txn.TransactionID,
		CustomerID:    txn.CustomerID,
		Method:        txn.PaymentMethod,
		Revenue:       revenue,
		Automated:     automated,
	})
}

func (s *checkoutService) release(c *counter, customerID string) {
	c.queue.Leave(customerID)
	delete(c.carts, customerID)
	delete(c.followers, customerID)
	c.reset()
}

func (s *checkoutService) Tick(ctx context.Context, dt time.Duration) {
	for _, id := range s.order {
		s.tickCounter(ctx, s.counters[id], dt)
	}
}

func (s *checkoutService) tickCounter(ctx context.Context, c *counter, dt time.Duration) {
	for _, customerID := range c.queue.Customers() {
		f, ok := c.followers[customerID]
		if !ok {
			continue
		}
		if pos, moved := f.Tick(dt); moved {
			s.events.Publish(domain.QueueAdvanced{CounterID: c.id, CustomerID: customerID, Position: pos})
		}
	}

	if c.state == domain.CounterStandby {
		if customerID, ok := c.queue.Front(); ok {
			s.begin(ctx, c, customerID)
		}
		return
	}
	if !c.cashier {
		return
	}

	switch {
	case c.state == domain.CounterScanning:
		c.timer += dt
		for c.state == domain.CounterScanning && c.timer >= s.cfg.AutoScanInterval {
			c.timer -= s.cfg.AutoScanInterval
			if err := s.scanItem(ctx, c, ""); err != nil {
				s.LogError(ctx, err, "Automatic scan failed", slog.String("counter_id", c.id))
				return
			}
		}
	case c.state.IsPaying():
		c.timer += dt
		if c.timer < s.cfg.AutoSettleDelay {
			return
		}
		total := c.txn.TotalPrice
		if _, err := s.wallet.Credit(ctx, total, "automated sale"); err != nil {
			s.LogError(ctx, err, "Failed to credit automated sale", slog.String("counter_id", c.id))
			return
		}
		s.complete(ctx, c, total, true)
	}
}

type nopProgressTracker struct{}

func (nopProgressTracker) RecordRevenue(string, decimal.Decimal) {}
func (nopProgressTracker) RecordItemSold(string)                 {}
func (nopProgressTracker) RecordCheckoutCompleted()              {}

type nopPresenter struct{}

func (nopPresenter) PlaySound(string)             {}
func (nopPresenter) LogMessage(string, string)    {}
func (nopPresenter) UpdateMonitor(string, string) {}
