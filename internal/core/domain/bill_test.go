package domain_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBill_StatusText(t *testing.T) {
	bill := domain.Bill{
		Type:            domain.BillRent,
		IssueDay:        5,
		DueDay:          10,
		GracePeriodDays: 2,
		Amount:          decimal.NewFromInt(100),
		Status:          domain.BillUnpaid,
	}

	tests := []struct {
		day  int
		want string
	}{
		{day: 5, want: "5 days left"},
		{day: 8, want: "2 days left"},
		{day: 9, want: "due tomorrow"},
		{day: 10, want: "due today"},
		{day: 11, want: "grace ends tomorrow"},
		{day: 12, want: "grace ends today"},
		{day: 13, want: "overdue"},
		{day: 40, want: "overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, bill.StatusText(tt.day))
		})
	}
}

func TestBill_StatusText_LongGrace(t *testing.T) {
	bill := domain.Bill{DueDay: 10, GracePeriodDays: 5, Status: domain.BillUnpaid}

	assert.Equal(t, "grace period, 4 days left", bill.StatusText(11))
	assert.Equal(t, "grace period, 2 days left", bill.StatusText(13))
	assert.Equal(t, "grace ends tomorrow", bill.StatusText(14))
}

func TestBill_StatusText_Settled(t *testing.T) {
	paid := domain.Bill{DueDay: 10, Status: domain.BillPaid}
	charged := domain.Bill{DueDay: 10, Status: domain.BillCharged}

	assert.Equal(t, "paid", paid.StatusText(3))
	assert.Equal(t, "paid", paid.StatusText(30))
	assert.Equal(t, "charged", charged.StatusText(30))
}

func TestBill_TotalAmountDue(t *testing.T) {
	bill := domain.Bill{
		DueDay:          10,
		GracePeriodDays: 2,
		Amount:          decimal.NewFromInt(100),
		LatePenalty:     decimal.NewFromInt(15),
		Status:          domain.BillUnpaid,
	}

	assert.True(t, decimal.NewFromInt(100).Equal(bill.TotalAmountDue(10)))
	assert.True(t, decimal.NewFromInt(115).Equal(bill.TotalAmountDue(11)))
	assert.False(t, bill.IsOverdue(12))
	assert.True(t, bill.IsOverdue(13))
}

func TestBill_MarkSettledOnce(t *testing.T) {
	bill := domain.Bill{Status: domain.BillUnpaid}

	require.NoError(t, bill.MarkPaid(4))
	assert.Equal(t, domain.BillPaid, bill.Status)
	assert.Equal(t, 4, bill.SettledDay)

	assert.ErrorIs(t, bill.MarkCharged(5), domain.ErrBillSettled)
	assert.Equal(t, domain.BillPaid, bill.Status)
	assert.Equal(t, 4, bill.SettledDay)
}

func TestBill_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bill    domain.Bill
		wantErr bool
	}{
		{name: "valid", bill: domain.Bill{Type: domain.BillSalary, IssueDay: 1, DueDay: 2}},
		{name: "unknown type", bill: domain.Bill{Type: "TAX", IssueDay: 1, DueDay: 2}, wantErr: true},
		{name: "due before issue", bill: domain.Bill{Type: domain.BillRent, IssueDay: 3, DueDay: 2}, wantErr: true},
		{name: "negative amount", bill: domain.Bill{Type: domain.BillRent, Amount: decimal.NewFromInt(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bill.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBillTemplate_AmountForLevel(t *testing.T) {
	rent := domain.BillTemplate{
		Type:            domain.BillRent,
		FrequencyInDays: 7,
		BaseAmount:      decimal.NewFromInt(150),
		LevelRate:       decimal.RequireFromString("0.10"),
	}

	assert.Equal(t, "150", rent.AmountForLevel(0).String())
	assert.Equal(t, "165", rent.AmountForLevel(1).String())
	assert.Equal(t, "195", rent.AmountForLevel(3).String())

	assert.True(t, rent.IsIssueDay(14))
	assert.False(t, rent.IsIssueDay(15))

	bill := rent.NewBill("b1", 14, 1)
	assert.Equal(t, 14, bill.IssueDay)
	assert.Equal(t, domain.BillUnpaid, bill.Status)
	assert.Equal(t, "165", bill.Amount.String())
}
