package domain

import "github.com/shopspring/decimal"

// CounterSnapshot is a read-only copy of a counter's state for callers outside
// the simulation loop.
type CounterSnapshot struct {
	CounterID      string               `json:"counterID"`
	State          CounterState         `json:"state"`
	CashierStaffed bool                 `json:"cashierStaffed"`
	Display        string               `json:"display"`
	Queue          []string             `json:"queue"`
	Transaction    *CheckoutTransaction `json:"transaction,omitempty"`
}

// SweepResult summarizes one ledger sweep.
type SweepResult struct {
	Removed []Bill
	Charged []Bill
}

// DayReport summarizes a day-advance pass.
type DayReport struct {
	Day        int
	Removed    []Bill
	Charged    []Bill
	Issued     []Bill
	Repayments []Bill
}

// StoreStatus is the store overview shown on the dashboard.
type StoreStatus struct {
	Day            int             `json:"day"`
	Balance        decimal.Decimal `json:"balance"`
	ExpansionLevel int             `json:"expansionLevel"`
	NextExpansion  decimal.Decimal `json:"nextExpansionPrice"`
	ActiveBills    int             `json:"activeBills"`
	TotalDue       decimal.Decimal `json:"totalDue"`
	ActiveLoans    int             `json:"activeLoans"`
	Cashiers       int             `json:"cashiers"`
}
