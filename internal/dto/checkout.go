package dto

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/shopspring/decimal"
)

// CartItemRequest is one item in a joining customer's cart.
type CartItemRequest struct {
	ItemID    string `json:"itemID" binding:"required"`
	ProductID string `json:"productID" binding:"required"`
}

// JoinQueueRequest adds a customer to the line of a counter.
type JoinQueueRequest struct {
	CustomerID string            `json:"customerID" binding:"required,max=64"`
	Cart       []CartItemRequest `json:"cart" binding:"dive"`
}

// ToCart converts the request cart to domain items.
func (r JoinQueueRequest) ToCart() []domain.CartItem {
	cart := make([]domain.CartItem, len(r.Cart))
	for i, item := range r.Cart {
		cart[i] = domain.CartItem{ItemID: item.ItemID, ProductID: item.ProductID}
	}
	return cart
}

// QueuePositionResponse is a customer's place in line, zero-based.
type QueuePositionResponse struct {
	CounterID  string `json:"counterID"`
	CustomerID string `json:"customerID"`
	Position   int    `json:"position"`
}

// ScanRequest names the item to scan. An empty item id scans the next pending item.
type ScanRequest struct {
	ItemID string `json:"itemID"`
}

// DrawChangeRequest hands one denomination (in cents) to the customer.
type DrawChangeRequest struct {
	Denomination int `json:"denomination" binding:"required,denomination"`
}

// CardAmountRequest is the amount keyed into the card terminal.
type CardAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransactionResponse is the in-flight transaction of a counter.
type TransactionResponse struct {
	domain.CheckoutTransaction
	ChangeGiven decimal.Decimal `json:"changeGiven"`
	ChangeOwed  decimal.Decimal `json:"changeOwed"`
	TotalText   string          `json:"totalText"`
}

// CounterResponse defines the data returned for a checkout counter.
type CounterResponse struct {
	CounterID      string               `json:"counterID"`
	State          domain.CounterState  `json:"state"`
	CashierStaffed bool                 `json:"cashierStaffed"`
	Display        string               `json:"display"`
	Queue          []string             `json:"queue"`
	Transaction    *TransactionResponse `json:"transaction,omitempty"`
}

// ToCounterResponse converts a counter snapshot to its response DTO
func ToCounterResponse(s *domain.CounterSnapshot) CounterResponse {
	res := CounterResponse{
		CounterID:      s.CounterID,
		State:          s.State,
		CashierStaffed: s.CashierStaffed,
		Display:        s.Display,
		Queue:          s.Queue,
	}
	if res.Queue == nil {
		res.Queue = []string{}
	}
	if t := s.Transaction; t != nil {
		res.Transaction = &TransactionResponse{
			CheckoutTransaction: *t,
			ChangeGiven:         t.ChangeGiven(),
			TotalText:           utils.FormatMoney(t.TotalPrice),
		}
		if t.PaymentMethod == domain.PaymentCash {
			res.Transaction.ChangeOwed = t.ChangeOwed()
		}
	}
	return res
}

// ToListCounterResponse converts counter snapshots to response DTOs
func ToListCounterResponse(snaps []domain.CounterSnapshot) []CounterResponse {
	res := make([]CounterResponse, len(snaps))
	for i := range snaps {
		res[i] = ToCounterResponse(&snaps[i])
	}
	return res
}
