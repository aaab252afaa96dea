package services

import "github.com/shopspring/decimal"

// ChangeSvc generates customer cash payments and verifies the change the player returns.
type ChangeSvc interface {
	// GeneratePlausiblePayment picks the cash amount a customer hands over for totalPrice.
	GeneratePlausiblePayment(totalPrice decimal.Decimal) decimal.Decimal

	// PaymentOptions lists every payment the strategies could produce for totalPrice.
	PaymentOptions(totalPrice decimal.Decimal) []decimal.Decimal

	// VerifyChange reports whether the tendered denominations (in cents) cover the change owed.
	VerifyChange(tenderedCents []int, customerTendered, totalPrice decimal.Decimal) bool

	// SumChange is the money value of tendered denominations.
	SumChange(tenderedCents []int) decimal.Decimal

	// Denominations returns the face values in cents, largest first.
	Denominations() []int
}
