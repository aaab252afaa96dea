package services

import (
	"slices"
	"time"
)

// DefaultQueuePollInterval is how often a queued customer re-reads its position.
const DefaultQueuePollInterval = 100 * time.Millisecond

// CheckoutQueue is the FIFO line of one counter. Positions are derived from
// the current index and never stored.
type CheckoutQueue struct {
	customers []string
}

// Join appends the customer on their first request and returns their position.
// A customer already in line keeps their place.
func (q *CheckoutQueue) Join(customerID string) int {
	if pos := q.Position(customerID); pos >= 0 {
		return pos
	}
	q.customers = append(q.customers, customerID)
	return len(q.customers) - 1
}

// Position is the zero-based index of the customer, or -1 when not queued.
// Position 0 is the active transaction slot.
func (q *CheckoutQueue) Position(customerID string) int {
	return slices.Index(q.customers, customerID)
}

// Leave removes the customer, moving everyone behind them forward.
func (q *CheckoutQueue) Leave(customerID string) bool {
	pos := q.Position(customerID)
	if pos < 0 {
		return false
	}
	q.customers = slices.Delete(q.customers, pos, pos+1)
	return true
}

// Front is the customer in the active slot.
func (q *CheckoutQueue) Front() (string, bool) {
	if len(q.customers) == 0 {
		return "", false
	}
	return q.customers[0], true
}

func (q *CheckoutQueue) Len() int {
	return len(q.customers)
}

// Customers returns a copy of the line in order.
func (q *CheckoutQueue) Customers() []string {
	return slices.Clone(q.customers)
}

// QueueFollower polls a customer's position at a fixed interval and reports
// forward movement only.
type QueueFollower struct {
	queue        *CheckoutQueue
	customerID   string
	pollInterval time.Duration
	elapsed      time.Duration
	lastPosition int
}

// NewQueueFollower starts following customerID from its current position.
func NewQueueFollower(queue *CheckoutQueue, customerID string, pollInterval time.Duration) *QueueFollower {
	if pollInterval <= 0 {
		pollInterval = DefaultQueuePollInterval
	}
	return &QueueFollower{
		queue:        queue,
		customerID:   customerID,
		pollInterval: pollInterval,
		lastPosition: queue.Position(customerID),
	}
}

// Tick advances the poll timer. It returns the current known position and
// true when a poll found that the customer moved forward.
func (f *QueueFollower) Tick(dt time.Duration) (int, bool) {
	f.elapsed += dt
	if f.elapsed < f.pollInterval {
		return f.lastPosition, false
	}
	f.elapsed = 0

	pos := f.queue.Position(f.customerID)
	if pos >= 0 && pos < f.lastPosition {
		f.lastPosition = pos
		return pos, true
	}
	return f.lastPosition, false
}

// Position is the last polled position.
func (f *QueueFollower) Position() int {
	return f.lastPosition
}
