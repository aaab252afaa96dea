package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Loan is an active fixed-installment loan. Interest is simple: the principal
// plus one interest charge, spread evenly over all installments.
type Loan struct {
	LoanID          string          `json:"loanID"`
	Name            string          `json:"name"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	TotalPayments   int             `json:"totalPayments"`
	PaymentInterval int             `json:"paymentInterval"` // days between installments
	PaymentsMade    int             `json:"paymentsMade"`
	StartDay        int             `json:"startDay"`
	LatePaymentFee  decimal.Decimal `json:"latePaymentFee"`
	AuditFields
}

// TotalRepayable is principal plus interest.
func (l Loan) TotalRepayable() decimal.Decimal {
	return l.Principal.Add(l.Principal.Mul(l.InterestRate))
}

// PaymentAmount is the per-installment amount, rounded to cents.
func (l Loan) PaymentAmount() decimal.Decimal {
	if l.TotalPayments <= 0 {
		return decimal.Zero
	}
	return l.TotalRepayable().Div(decimal.NewFromInt(int64(l.TotalPayments))).Round(2)
}

// NextPaymentDay is the day the next installment falls due.
func (l Loan) NextPaymentDay() int {
	return l.StartDay + l.PaymentsMade*l.PaymentInterval
}

// IsCompleted reports whether every installment has been issued.
func (l Loan) IsCompleted() bool {
	return l.PaymentsMade >= l.TotalPayments
}

// InstallmentAmount is the amount of the n-th installment, counting from 1.
// The last installment absorbs the rounding so the schedule sums to
// TotalRepayable exactly.
func (l Loan) InstallmentAmount(n int) decimal.Decimal {
	if n < 1 || n > l.TotalPayments {
		return decimal.Zero
	}
	if n < l.TotalPayments {
		return l.PaymentAmount()
	}
	return l.TotalRepayable().Sub(l.PaymentAmount().Mul(decimal.NewFromInt(int64(l.TotalPayments - 1))))
}

// RemainingBalance is the sum of installments not yet issued.
func (l Loan) RemainingBalance() decimal.Decimal {
	if l.IsCompleted() {
		return decimal.Zero
	}
	return l.TotalRepayable().Sub(l.PaymentAmount().Mul(decimal.NewFromInt(int64(l.PaymentsMade))))
}

// RecordPayment counts one more issued installment.
func (l *Loan) RecordPayment() {
	if !l.IsCompleted() {
		l.PaymentsMade++
	}
}

// LoanTemplate is a loan product offered to the player.
type LoanTemplate struct {
	Name            string          `json:"name"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	TotalPayments   int             `json:"totalPayments"`
	PaymentInterval int             `json:"paymentInterval"`
	LatePaymentFee  decimal.Decimal `json:"latePaymentFee"`
}

// Validate checks the loan product definition.
func (t LoanTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("loan template name is required")
	}
	if !t.Principal.IsPositive() {
		return fmt.Errorf("loan %s: principal must be positive", t.Name)
	}
	if t.InterestRate.IsNegative() {
		return fmt.Errorf("loan %s: interest rate must not be negative", t.Name)
	}
	if t.TotalPayments <= 0 || t.PaymentInterval <= 0 {
		return fmt.Errorf("loan %s: payments and interval must be positive", t.Name)
	}
	return nil
}

// NewLoan starts a loan from the template.
func (t LoanTemplate) NewLoan(loanID string, startDay int) Loan {
	return Loan{
		LoanID:          loanID,
		Name:            t.Name,
		Principal:       t.Principal,
		InterestRate:    t.InterestRate,
		TotalPayments:   t.TotalPayments,
		PaymentInterval: t.PaymentInterval,
		StartDay:        startDay,
		LatePaymentFee:  t.LatePaymentFee,
	}
}

// DefaultLoanTemplates are the loan products of a new store.
func DefaultLoanTemplates() []LoanTemplate {
	return []LoanTemplate{
		{
			Name:            "Small business loan",
			Principal:       decimal.NewFromInt(1000),
			InterestRate:    decimal.RequireFromString("0.5"),
			TotalPayments:   5,
			PaymentInterval: 1,
			LatePaymentFee:  decimal.NewFromInt(20),
		},
		{
			Name:            "Expansion loan",
			Principal:       decimal.NewFromInt(5000),
			InterestRate:    decimal.RequireFromString("0.3"),
			TotalPayments:   10,
			PaymentInterval: 2,
			LatePaymentFee:  decimal.NewFromInt(50),
		},
	}
}
