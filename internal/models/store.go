package models

import "github.com/shopspring/decimal"

// Product is a row of the products table. CustomPrice is NULL when unset.
type Product struct {
	ProductID   string              `db:"product_id"`
	Name        string              `db:"name"`
	MarketPrice decimal.Decimal     `db:"market_price"`
	CustomPrice decimal.NullDecimal `db:"custom_price"`
}

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID string          `db:"employee_id"`
	CounterID  string          `db:"counter_id"`
	DailyWage  decimal.Decimal `db:"daily_wage"`
	HiredDay   int             `db:"hired_day"`
}
