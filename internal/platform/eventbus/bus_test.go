package eventbus_test

import (
	"testing"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/platform/eventbus"
	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := eventbus.New(nil)
	var got []string

	bus.Subscribe("bills_updated", func(e domain.Event) { got = append(got, "bills:"+e.EventName()) })
	bus.SubscribeAll(func(e domain.Event) { got = append(got, "all:"+e.EventName()) })
	bus.Subscribe("day_advanced", func(e domain.Event) { got = append(got, "day:"+e.EventName()) })

	bus.Publish(domain.BillsUpdated{Day: 3})
	bus.Publish(domain.DayAdvanced{Day: 3})

	assert.Equal(t, []string{
		"bills:bills_updated",
		"all:bills_updated",
		"all:day_advanced",
		"day:day_advanced",
	}, got)
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := eventbus.New(nil)
	delivered := false
	bus.SubscribeAll(func(domain.Event) { panic("boom") })
	bus.SubscribeAll(func(domain.Event) { delivered = true })

	assert.NotPanics(t, func() { bus.Publish(domain.LoansUpdated{}) })
	assert.True(t, delivered)
}
