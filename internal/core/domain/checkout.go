package domain

import (
	"github.com/shopspring/decimal"
)

// CounterState is the state of a checkout counter's transaction state machine.
type CounterState string

const (
	CounterStandby  CounterState = "STANDBY"
	CounterPlacing  CounterState = "PLACING"
	CounterScanning CounterState = "SCANNING"
	CounterCashPay  CounterState = "CASH_PAY"
	CounterCardPay  CounterState = "CARD_PAY"
)

// IsPaying reports whether the counter is waiting for settlement.
func (s CounterState) IsPaying() bool {
	return s == CounterCashPay || s == CounterCardPay
}

// PaymentMethod is how a customer settles a transaction.
type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// CartItem is one item a customer hands to the counter.
type CartItem struct {
	ItemID    string `json:"itemID"`
	ProductID string `json:"productID"`
}

// ScannedItem records the price an item was sold at when it was scanned.
type ScannedItem struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
}

// TenderedChange is one denomination the player has handed back, with the token
// the client uses to render it.
type TenderedChange struct {
	Denomination int    `json:"denomination"`
	TokenID      string `json:"tokenID"`
}

// CheckoutTransaction is the single in-flight transaction of a counter.
type CheckoutTransaction struct {
	TransactionID          string           `json:"transactionID"`
	CustomerID             string           `json:"customerID"`
	PendingItems           []CartItem       `json:"pendingItems"`
	ScannedItems           []ScannedItem    `json:"scannedItems"`
	TotalPrice             decimal.Decimal  `json:"totalPrice"`
	PaymentMethod          PaymentMethod    `json:"paymentMethod"`
	CustomerTenderedAmount decimal.Decimal  `json:"customerTenderedAmount"`
	TenderedChange         []TenderedChange `json:"tenderedChange"`
}

// TakePending removes the pending item with the given id. An empty id takes the first one.
func (t *CheckoutTransaction) TakePending(itemID string) (CartItem, bool) {
	for i, item := range t.PendingItems {
		if itemID == "" || item.ItemID == itemID {
			t.PendingItems = append(t.PendingItems[:i], t.PendingItems[i+1:]...)
			return item, true
		}
	}
	return CartItem{}, false
}

// PushChange appends a tendered denomination.
func (t *CheckoutTransaction) PushChange(c TenderedChange) {
	t.TenderedChange = append(t.TenderedChange, c)
}

// PopChange removes the most recently tendered denomination.
func (t *CheckoutTransaction) PopChange() (TenderedChange, bool) {
	n := len(t.TenderedChange)
	if n == 0 {
		return TenderedChange{}, false
	}
	last := t.TenderedChange[n-1]
	t.TenderedChange = t.TenderedChange[:n-1]
	return last, true
}

// ClearChange drops all tendered change.
func (t *CheckoutTransaction) ClearChange() {
	t.TenderedChange = nil
}

// ChangeCents lists the tendered denominations in the order they were given.
func (t *CheckoutTransaction) ChangeCents() []int {
	cents := make([]int, len(t.TenderedChange))
	for i, c := range t.TenderedChange {
		cents[i] = c.Denomination
	}
	return cents
}

// ChangeGiven is the money value of the tendered change.
func (t *CheckoutTransaction) ChangeGiven() decimal.Decimal {
	var total int64
	for _, c := range t.TenderedChange {
		total += int64(c.Denomination)
	}
	return FromCents(total)
}

// ChangeOwed is what the customer expects back.
func (t *CheckoutTransaction) ChangeOwed() decimal.Decimal {
	return t.CustomerTenderedAmount.Sub(t.TotalPrice)
}
