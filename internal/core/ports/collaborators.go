package ports

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RandomSource supplies randomness to the simulation. Implementations must be
// deterministic for a fixed seed so runs can be replayed in tests.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// ProgressTracker records goal progress for the player.
type ProgressTracker interface {
	RecordRevenue(productID string, amount decimal.Decimal)
	RecordItemSold(productID string)
	RecordCheckoutCompleted()
}

// Presenter receives the audio-visual side effects of the simulation.
type Presenter interface {
	PlaySound(sound string)
	LogMessage(message, color string)
	UpdateMonitor(counterID, text string)
}

// EventPublisher delivers domain events to subscribers.
type EventPublisher interface {
	Publish(event domain.Event)
}

// Sound cues played by the checkout counters.
const (
	SoundScan             = "scan"
	SoundCashDrawer       = "cash_drawer"
	SoundChangeReturned   = "change_returned"
	SoundError            = "error"
	SoundCheckoutComplete = "checkout_complete"
)
