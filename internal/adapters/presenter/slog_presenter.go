// Package presenter turns checkout side effects into structured log records
// for headless runs and remembers the last text shown on each counter monitor.
package presenter

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/storefront_sim/internal/core/ports"
)

type SlogPresenter struct {
	logger *slog.Logger

	mu       sync.RWMutex
	monitors map[string]string
}

func NewSlogPresenter(logger *slog.Logger) *SlogPresenter {
	return &SlogPresenter{
		logger:   logger.With(slog.String("component", "presenter")),
		monitors: make(map[string]string),
	}
}

var _ ports.Presenter = (*SlogPresenter)(nil)

func (p *SlogPresenter) PlaySound(sound string) {
	p.logger.Debug("sound", slog.String("sound", sound))
}

func (p *SlogPresenter) LogMessage(message, color string) {
	p.logger.Info(message, slog.String("color", color))
}

func (p *SlogPresenter) UpdateMonitor(counterID, text string) {
	p.mu.Lock()
	p.monitors[counterID] = text
	p.mu.Unlock()
	p.logger.Debug("monitor", slog.String("counter_id", counterID), slog.String("text", text))
}

// Monitor is the last text shown on the counter's monitor.
func (p *SlogPresenter) Monitor(counterID string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.monitors[counterID]
}
