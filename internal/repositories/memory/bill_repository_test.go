package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBill(id string, day int) domain.Bill {
	return domain.Bill{
		BillID:   id,
		Type:     domain.BillRent,
		IssueDay: day,
		DueDay:   day + 3,
		Amount:   decimal.NewFromInt(100),
		Status:   domain.BillUnpaid,
	}
}

func TestBillRepository_ApplyBillChanges(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBillRepository()
	require.NoError(t, repo.SaveBill(ctx, newBill("a", 1)))
	require.NoError(t, repo.SaveBill(ctx, newBill("b", 2)))
	require.NoError(t, repo.SaveBill(ctx, newBill("c", 3)))

	charged := newBill("b", 2)
	charged.Status = domain.BillCharged
	require.NoError(t, repo.ApplyBillChanges(ctx, []domain.Bill{charged}, []string{"a"}))

	bills, err := repo.ListBills(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "b", bills[0].BillID)
	assert.Equal(t, domain.BillCharged, bills[0].Status)
	assert.Equal(t, "c", bills[1].BillID)
}

func TestBillRepository_ApplyBillChangesUnknownLeavesLedger(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBillRepository()
	require.NoError(t, repo.SaveBill(ctx, newBill("a", 1)))

	err := repo.ApplyBillChanges(ctx, []domain.Bill{newBill("missing", 1)}, []string{"a"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	bills, _ := repo.ListBills(ctx)
	assert.Len(t, bills, 1)
}

func TestBillRepository_SaveDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBillRepository()
	require.NoError(t, repo.SaveBill(ctx, newBill("a", 1)))
	assert.ErrorIs(t, repo.SaveBill(ctx, newBill("a", 1)), apperrors.ErrDuplicate)
}

func TestBillRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBillRepository()
	require.NoError(t, repo.SaveBill(ctx, newBill("a", 1)))

	bills, _ := repo.ListBills(ctx)
	bills[0].Status = domain.BillPaid

	stored, err := repo.FindBillByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.BillUnpaid, stored.Status)

	missing, err := repo.FindBillByID(ctx, "zzz")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
