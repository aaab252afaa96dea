package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Denominations are the bill and coin face values in cents, largest first.
// They are used both to generate customer payments and to tender change.
var Denominations = []int{5000, 2000, 1000, 500, 100, 50, 25, 10, 5, 1}

// RoundNumberStep is the step (in cents) used by the "higher round number" payment strategy.
const RoundNumberStep = 500

var hundred = decimal.NewFromInt(100)

// ValidateDenominations checks that a denomination set is non-empty, positive and strictly descending.
func ValidateDenominations(denoms []int) error {
	if len(denoms) == 0 {
		return fmt.Errorf("denomination set is empty")
	}
	for i, d := range denoms {
		if d <= 0 {
			return fmt.Errorf("denomination %d at index %d is not positive", d, i)
		}
		if i > 0 && d >= denoms[i-1] {
			return fmt.Errorf("denominations not strictly descending at index %d (%d >= %d)", i, d, denoms[i-1])
		}
	}
	return nil
}

// IsDenomination reports whether cents is one of the default face values.
func IsDenomination(cents int) bool {
	for _, d := range Denominations {
		if d == cents {
			return true
		}
	}
	return false
}

// ToCents converts a money amount to whole cents, rounding up any fraction of a cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Ceil().IntPart()
}

// FromCents converts whole cents to a money amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}
