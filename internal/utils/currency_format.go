package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as dollars with two decimals.
// Example: 12.5 returns "$12.50", -3 returns "-$3.00"
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatCents renders an amount in cents as dollars.
func FormatCents(cents int) string {
	return FormatMoney(decimal.NewFromInt(int64(cents)).Shift(-2))
}
