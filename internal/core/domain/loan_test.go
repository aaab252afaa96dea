package domain_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoan_Schedule(t *testing.T) {
	loan := domain.Loan{
		Principal:       decimal.NewFromInt(1000),
		InterestRate:    decimal.RequireFromString("0.5"),
		TotalPayments:   5,
		PaymentInterval: 1,
		StartDay:        2,
	}

	assert.Equal(t, "300", loan.PaymentAmount().String())
	assert.Equal(t, "1500", loan.TotalRepayable().String())

	var days []int
	for !loan.IsCompleted() {
		days = append(days, loan.NextPaymentDay())
		loan.RecordPayment()
	}

	assert.Equal(t, []int{2, 3, 4, 5, 6}, days)
	assert.Equal(t, 5, loan.PaymentsMade)
	assert.True(t, loan.RemainingBalance().IsZero())

	loan.RecordPayment()
	assert.Equal(t, 5, loan.PaymentsMade, "payments made never exceeds the schedule")
}

func TestLoan_CompletedOnlyAfterLastPayment(t *testing.T) {
	loan := domain.Loan{Principal: decimal.NewFromInt(100), TotalPayments: 2, PaymentInterval: 3, StartDay: 4}

	assert.False(t, loan.IsCompleted())
	loan.RecordPayment()
	assert.False(t, loan.IsCompleted())
	assert.Equal(t, 7, loan.NextPaymentDay())
	loan.RecordPayment()
	assert.True(t, loan.IsCompleted())
}

func TestLoan_PaymentAmountRoundsToCents(t *testing.T) {
	loan := domain.Loan{Principal: decimal.NewFromInt(100), InterestRate: decimal.Zero, TotalPayments: 3}
	assert.Equal(t, "33.33", loan.PaymentAmount().String())

	empty := domain.Loan{Principal: decimal.NewFromInt(100)}
	assert.True(t, empty.PaymentAmount().IsZero())
}

func TestLoan_LastInstallmentAbsorbsRounding(t *testing.T) {
	loan := domain.Loan{
		Principal:       decimal.NewFromInt(1000),
		InterestRate:    decimal.RequireFromString("0.1"),
		TotalPayments:   3,
		PaymentInterval: 1,
	}

	var amounts []string
	sum := decimal.Zero
	for n := 1; n <= loan.TotalPayments; n++ {
		amount := loan.InstallmentAmount(n)
		amounts = append(amounts, amount.StringFixed(2))
		sum = sum.Add(amount)
	}
	assert.Equal(t, []string{"366.67", "366.67", "366.66"}, amounts)
	assert.True(t, sum.Equal(loan.TotalRepayable()), "schedule sums to %s", sum)

	assert.Equal(t, "1100", loan.RemainingBalance().String())
	loan.RecordPayment()
	loan.RecordPayment()
	assert.Equal(t, "366.66", loan.RemainingBalance().String(), "remaining equals the last installment")

	assert.True(t, loan.InstallmentAmount(0).IsZero())
	assert.True(t, loan.InstallmentAmount(4).IsZero())
}

func TestLoanTemplate_Validate(t *testing.T) {
	for _, tmpl := range domain.DefaultLoanTemplates() {
		assert.NoError(t, tmpl.Validate(), tmpl.Name)
	}

	bad := domain.LoanTemplate{Name: "bad", Principal: decimal.NewFromInt(10), TotalPayments: 0, PaymentInterval: 1}
	assert.Error(t, bad.Validate())
}
