package domain

import "github.com/shopspring/decimal"

// Event is a notification published on the event bus.
type Event interface {
	EventName() string
}

// BillsUpdated fires once after each ledger pass or bill payment.
type BillsUpdated struct {
	Day         int
	ActiveBills int
}

func (BillsUpdated) EventName() string { return "bills_updated" }

// MoneyChanged fires whenever the player balance changes.
type MoneyChanged struct {
	Balance decimal.Decimal
	Delta   decimal.Decimal
	Reason  string
}

func (MoneyChanged) EventName() string { return "money_changed" }

// LoansUpdated fires after a loan is taken or serviced.
type LoansUpdated struct {
	ActiveLoans int
}

func (LoansUpdated) EventName() string { return "loans_updated" }

// CheckoutCompleted fires when a counter settles a transaction.
type CheckoutCompleted struct {
	CounterID     string
	TransactionID string
	CustomerID    string
	Method        PaymentMethod
	Revenue       decimal.Decimal
	Automated     bool
}

func (CheckoutCompleted) EventName() string { return "checkout_completed" }

// DayAdvanced fires after the day-advance pass completed.
type DayAdvanced struct {
	Day int
}

func (DayAdvanced) EventName() string { return "day_advanced" }

// QueueAdvanced fires when a polled customer moved forward in a counter line.
type QueueAdvanced struct {
	CounterID  string
	CustomerID string
	Position   int
}

func (QueueAdvanced) EventName() string { return "queue_advanced" }
