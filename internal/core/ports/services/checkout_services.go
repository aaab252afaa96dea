package services

import (
	"context"
	"time"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QueueSvc defines the customer queue operations of the counters
type QueueSvc interface {
	// JoinQueue appends a customer with their cart and returns the queue position.
	JoinQueue(ctx context.Context, counterID, customerID string, cart []domain.CartItem) (int, error)

	// LeaveQueue removes a customer that has not yet been served.
	LeaveQueue(ctx context.Context, counterID, customerID string) error

	// QueuePosition is the zero-based position of the customer, or -1.
	QueuePosition(ctx context.Context, counterID, customerID string) (int, error)
}

// CounterReaderSvc defines read operations for checkout counters
type CounterReaderSvc interface {
	ListCounters(ctx context.Context) []domain.CounterSnapshot
	GetCounter(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
}

// CounterWriterSvc drives the transaction state machine of a counter
type CounterWriterSvc interface {
	// ServeNext begins a transaction for the customer at the front of the queue.
	ServeNext(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
	ItemsPlaced(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
	Scan(ctx context.Context, counterID, itemID string) (*domain.CounterSnapshot, error)
	DrawChange(ctx context.Context, counterID string, cents int) (*domain.CounterSnapshot, error)
	UndoChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
	ClearChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
	ConfirmChange(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)
	EnterCardAmount(ctx context.Context, counterID string, amount decimal.Decimal) (*domain.CounterSnapshot, error)
	Abandon(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)

	// Tick advances the counters' timers by dt.
	Tick(ctx context.Context, dt time.Duration)
}

// CashierStaffer toggles automated operation of one counter.
type CashierStaffer interface {
	HasCounter(counterID string) bool
	IsStaffed(counterID string) bool
	SetCashier(ctx context.Context, counterID string, staffed bool) error
}

// CheckoutSvcFacade combines all checkout-related service interfaces
type CheckoutSvcFacade interface {
	QueueSvc
	CounterReaderSvc
	CounterWriterSvc
	CashierStaffer
}
