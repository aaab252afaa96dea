// Package telemetry implements the goal progress trackers fed by the checkout counters.
package telemetry

import (
	"maps"
	"sync"

	"github.com/SscSPs/storefront_sim/internal/core/ports"
	"github.com/shopspring/decimal"
)

// ProductProgress is the revenue and sell count of one product.
type ProductProgress struct {
	Revenue   decimal.Decimal `json:"revenue"`
	ItemsSold int             `json:"itemsSold"`
}

// ProgressSnapshot is a copy of the tracked counters.
type ProgressSnapshot struct {
	TotalRevenue       decimal.Decimal            `json:"totalRevenue"`
	ItemsSold          int                        `json:"itemsSold"`
	CheckoutsCompleted int                        `json:"checkoutsCompleted"`
	Products           map[string]ProductProgress `json:"products"`
}

// ProgressCounters keeps the mission counters in memory.
type ProgressCounters struct {
	mu        sync.RWMutex
	products  map[string]ProductProgress
	revenue   decimal.Decimal
	sold      int
	checkouts int
}

func NewProgressCounters() *ProgressCounters {
	return &ProgressCounters{products: make(map[string]ProductProgress)}
}

var _ ports.ProgressTracker = (*ProgressCounters)(nil)

func (p *ProgressCounters) RecordRevenue(productID string, amount decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pp := p.products[productID]
	pp.Revenue = pp.Revenue.Add(amount)
	p.products[productID] = pp
	p.revenue = p.revenue.Add(amount)
}

func (p *ProgressCounters) RecordItemSold(productID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pp := p.products[productID]
	pp.ItemsSold++
	p.products[productID] = pp
	p.sold++
}

func (p *ProgressCounters) RecordCheckoutCompleted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checkouts++
}

func (p *ProgressCounters) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ProgressSnapshot{
		TotalRevenue:       p.revenue,
		ItemsSold:          p.sold,
		CheckoutsCompleted: p.checkouts,
		Products:           maps.Clone(p.products),
	}
}

// Multi fans every record out to several trackers.
type Multi []ports.ProgressTracker

var _ ports.ProgressTracker = Multi(nil)

func (m Multi) RecordRevenue(productID string, amount decimal.Decimal) {
	for _, t := range m {
		t.RecordRevenue(productID, amount)
	}
}

func (m Multi) RecordItemSold(productID string) {
	for _, t := range m {
		t.RecordItemSold(productID)
	}
}

func (m Multi) RecordCheckoutCompleted() {
	for _, t := range m {
		t.RecordCheckoutCompleted()
	}
}
