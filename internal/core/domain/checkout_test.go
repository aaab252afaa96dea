package domain_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutTransaction_ChangeStack(t *testing.T) {
	txn := domain.CheckoutTransaction{
		TotalPrice:             decimal.RequireFromString("12.75"),
		CustomerTenderedAmount: decimal.NewFromInt(15),
	}

	txn.PushChange(domain.TenderedChange{Denomination: 100, TokenID: "a"})
	txn.PushChange(domain.TenderedChange{Denomination: 100, TokenID: "b"})
	txn.PushChange(domain.TenderedChange{Denomination: 50, TokenID: "c"})

	assert.Equal(t, "2.5", txn.ChangeGiven().String())

	last, ok := txn.PopChange()
	require.True(t, ok)
	assert.Equal(t, "c", last.TokenID, "undo removes the most recent draw")
	assert.Equal(t, []int{100, 100}, txn.ChangeCents())

	txn.PushChange(domain.TenderedChange{Denomination: 25, TokenID: "d"})
	assert.Equal(t, "2.25", txn.ChangeGiven().String())
	assert.True(t, txn.ChangeOwed().Equal(txn.ChangeGiven()))

	txn.ClearChange()
	_, ok = txn.PopChange()
	assert.False(t, ok)
	assert.True(t, txn.ChangeGiven().IsZero())
}

func TestCheckoutTransaction_TakePending(t *testing.T) {
	txn := domain.CheckoutTransaction{PendingItems: []domain.CartItem{
		{ItemID: "i1", ProductID: "p1"},
		{ItemID: "i2", ProductID: "p2"},
	}}

	item, ok := txn.TakePending("i2")
	require.True(t, ok)
	assert.Equal(t, "p2", item.ProductID)

	_, ok = txn.TakePending("missing")
	assert.False(t, ok)

	item, ok = txn.TakePending("")
	require.True(t, ok)
	assert.Equal(t, "i1", item.ItemID)
	assert.Empty(t, txn.PendingItems)
}
