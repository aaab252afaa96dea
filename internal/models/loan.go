package models

import "github.com/shopspring/decimal"

// Loan is a row of the loans table.
type Loan struct {
	LoanID          string          `db:"loan_id"`
	Name            string          `db:"name"`
	Principal       decimal.Decimal `db:"principal"`
	InterestRate    decimal.Decimal `db:"interest_rate"`
	TotalPayments   int             `db:"total_payments"`
	PaymentInterval int             `db:"payment_interval"`
	PaymentsMade    int             `db:"payments_made"`
	StartDay        int             `db:"start_day"`
	LatePaymentFee  decimal.Decimal `db:"late_payment_fee"`
	AuditFields
}
