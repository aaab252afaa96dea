package telemetry

import (
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/shopspring/decimal"
)

// Enqueuer sends one analytics event.
type Enqueuer interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

var _ Enqueuer = (*utils.PosthogClientWrapper)(nil)

// PosthogTracker forwards progress records as PostHog events for the store.
type PosthogTracker struct {
	client     Enqueuer
	distinctID string
}

// NewPosthogTracker reports every record under distinctID.
func NewPosthogTracker(client Enqueuer, distinctID string) *PosthogTracker {
	return &PosthogTracker{client: client, distinctID: distinctID}
}

var _ ports.ProgressTracker = (*PosthogTracker)(nil)

func (p *PosthogTracker) RecordRevenue(productID string, amount decimal.Decimal) {
	p.client.Enqueue(p.distinctID, "revenue_recorded", map[string]any{
		"product_id": productID,
		"amount":     amount.String(),
	})
}

func (p *PosthogTracker) RecordItemSold(productID string) {
	p.client.Enqueue(p.distinctID, "item_sold", map[string]any{"product_id": productID})
}

func (p *PosthogTracker) RecordCheckoutCompleted() {
	p.client.Enqueue(p.distinctID, "checkout_completed", nil)
}
