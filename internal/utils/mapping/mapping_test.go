package mapping_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMapping_CustomPrice(t *testing.T) {
	plain := domain.Product{ProductID: "milk", Name: "Milk", MarketPrice: decimal.RequireFromString("2.5")}
	m := mapping.ToModelProduct(plain)
	assert.False(t, m.CustomPrice.Valid)
	assert.Nil(t, mapping.ToDomainProduct(m).CustomPrice)

	custom := decimal.RequireFromString("3.1")
	plain.CustomPrice = &custom
	m = mapping.ToModelProduct(plain)
	require.True(t, m.CustomPrice.Valid)

	back := mapping.ToDomainProduct(m)
	require.NotNil(t, back.CustomPrice)
	assert.True(t, back.CustomPrice.Equal(custom))
	assert.True(t, back.EffectivePrice().Equal(custom))
}

func TestBillMapping_KeepsStatus(t *testing.T) {
	bill := domain.Bill{
		BillID:      "b1",
		Type:        domain.BillRepayment,
		IssueDay:    2,
		DueDay:      3,
		Amount:      decimal.NewFromInt(300),
		LatePenalty: decimal.NewFromInt(20),
		Status:      domain.BillCharged,
		SettledDay:  6,
		SourceID:    "loan-1",
	}
	back := mapping.ToDomainBill(mapping.ToModelBill(bill))
	assert.Equal(t, bill, back)
}
