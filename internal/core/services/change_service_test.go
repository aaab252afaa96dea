package services_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/adapters/random"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeService_RejectsUnorderedDenominations(t *testing.T) {
	_, err := services.NewChangeService(&scriptedRandom{}, services.WithDenominations([]int{100, 500, 25}))
	assert.Error(t, err)

	_, err = services.NewChangeService(&scriptedRandom{}, services.WithDenominations(nil))
	assert.Error(t, err)
}

func TestChangeService_PaymentOptions(t *testing.T) {
	svc, err := services.NewChangeService(&scriptedRandom{})
	require.NoError(t, err)

	options := svc.PaymentOptions(money("12.75"))
	require.Len(t, options, 4)
	assert.True(t, options[0].Equal(money("12.75")), "exact")
	assert.True(t, options[1].Equal(money("20")), "round up to denomination")
	assert.True(t, options[2].Equal(money("20")), "smallest excess")
	assert.True(t, options[3].Equal(money("15")), "higher round number")

	// a total equal to a denomination is never overpaid by the same note
	options = svc.PaymentOptions(money("20"))
	require.Len(t, options, 4)
	assert.True(t, options[1].Equal(money("20")))
	assert.True(t, options[2].Equal(money("50")))
	assert.True(t, options[3].Equal(money("20")))
}

func TestChangeService_PaymentOptionsAboveLargestNote(t *testing.T) {
	svc, err := services.NewChangeService(&scriptedRandom{})
	require.NoError(t, err)

	options := svc.PaymentOptions(money("63"))
	require.Len(t, options, 3)
	assert.True(t, options[0].Equal(money("63")))
	assert.True(t, options[1].Equal(money("63")))
	assert.True(t, options[2].Equal(money("65")))
}

func TestChangeService_GeneratePlausiblePaymentScripted(t *testing.T) {
	tests := []struct {
		name   string
		floats []float64
		ints   []int
		want   string
	}{
		{name: "exact", floats: []float64{0.1}, ints: []int{0}, want: "12.75"},
		{name: "round up", floats: []float64{0.9}, ints: []int{0}, want: "20"},
		{name: "round number", floats: []float64{0.9}, ints: []int{2}, want: "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := services.NewChangeService(&scriptedRandom{floats: tt.floats, ints: tt.ints})
			require.NoError(t, err)
			got := svc.GeneratePlausiblePayment(money("12.75"))
			assert.True(t, got.Equal(money(tt.want)), "got %s", got)
		})
	}
}

func TestChangeService_GeneratedPaymentAlwaysCoversTotal(t *testing.T) {
	svc, err := services.NewChangeService(random.NewSource(7))
	require.NoError(t, err)

	for cents := int64(1); cents <= 12000; cents += 37 {
		total := domain.FromCents(cents)
		paid := svc.GeneratePlausiblePayment(total)
		assert.True(t, paid.GreaterThanOrEqual(total), "paid %s for %s", paid, total)
		assert.True(t, paid.Equal(paid.Round(2)), "paid %s is not whole cents", paid)
	}
}

func TestChangeService_VerifyChange(t *testing.T) {
	svc, err := services.NewChangeService(&scriptedRandom{})
	require.NoError(t, err)

	tendered, total := money("15"), money("12.75")
	assert.True(t, svc.VerifyChange([]int{100, 100, 25}, tendered, total))
	assert.True(t, svc.VerifyChange([]int{25, 50, 50, 100}, tendered, total))
	assert.True(t, svc.VerifyChange([]int{500}, tendered, total), "over-tendered change is accepted")
	assert.False(t, svc.VerifyChange([]int{100, 100}, tendered, total))
	assert.False(t, svc.VerifyChange(nil, tendered, total))
	assert.True(t, svc.VerifyChange(nil, total, total), "exact payment needs no change")
}

func TestChangeService_SumChangeAndDenominations(t *testing.T) {
	svc, err := services.NewChangeService(&scriptedRandom{})
	require.NoError(t, err)

	assert.True(t, svc.SumChange([]int{2000, 500, 1}).Equal(money("25.01")))
	assert.True(t, svc.SumChange(nil).IsZero())

	denoms := svc.Denominations()
	assert.Equal(t, domain.Denominations, denoms)
	denoms[0] = 1
	assert.Equal(t, 5000, svc.Denominations()[0], "callers get a copy")
}
