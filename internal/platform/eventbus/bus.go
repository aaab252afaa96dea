// Package eventbus is a synchronous in-process publish/subscribe bus for
// domain events. Handlers run on the publisher's goroutine in subscription order.
package eventbus

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
)

// Handler receives a published event.
type Handler func(event domain.Event)

type subscription struct {
	name    string // empty matches every event
	handler Handler
}

// Bus delivers each event to the handlers subscribed to its name and to the
// catch-all handlers, in the order they subscribed.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

var _ ports.EventPublisher = (*Bus)(nil)

// Subscribe registers handler for events named name.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, handler: handler})
}

// SubscribeAll registers handler for every event.
func (b *Bus) SubscribeAll(handler Handler) {
	b.Subscribe("", handler)
}

// Publish delivers event synchronously. A panicking handler is logged and
// does not stop delivery to the others.
func (b *Bus) Publish(event domain.Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	name := event.EventName()
	for _, s := range subs {
		if s.name == "" || s.name == name {
			b.deliver(s.handler, event)
		}
	}
}

func (b *Bus) deliver(handler Handler, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", slog.String("event", event.EventName()), slog.Any("panic", r))
		}
	}()
	handler(event)
}
