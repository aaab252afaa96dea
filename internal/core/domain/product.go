package domain

import "github.com/shopspring/decimal"

// Product is a sellable product with its market price and an optional
// price the store manager set.
type Product struct {
	ProductID   string           `json:"productID"`
	Name        string           `json:"name"`
	MarketPrice decimal.Decimal  `json:"marketPrice"`
	CustomPrice *decimal.Decimal `json:"customPrice,omitempty"`
}

// EffectivePrice is the custom price when one is set, else the market price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.CustomPrice != nil {
		return *p.CustomPrice
	}
	return p.MarketPrice
}

// Employee is a hired cashier and the daily wage billed for them.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	CounterID  string          `json:"counterID"`
	DailyWage  decimal.Decimal `json:"dailyWage"`
	HiredDay   int             `json:"hiredDay"`
}
