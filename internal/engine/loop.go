// Package engine provides the single-threaded simulation loop. All simulation
// state is touched only from the loop goroutine: the ticker callbacks run on
// it and every external caller submits work through Do.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrLoopStopped is returned by Do once the loop has exited.
var ErrLoopStopped = errors.New("simulation loop stopped")

type job struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Loop drives the simulation clock.
type Loop struct {
	Interval  time.Duration // tick interval
	DayLength time.Duration // wall time per in-game day, 0 disables automatic days

	// Callbacks populated during setup. Both run on the loop goroutine.
	OnTick func(ctx context.Context, dt time.Duration)
	OnDay  func(ctx context.Context)

	jobs    chan job
	stopped chan struct{}
	ticks   uint64
	dayTime time.Duration
	logger  *slog.Logger
}

// NewLoop creates a loop ticking every interval.
func NewLoop(interval, dayLength time.Duration, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		Interval:  interval,
		DayLength: dayLength,
		jobs:      make(chan job),
		stopped:   make(chan struct{}),
		logger:    logger,
	}
}

// Run processes ticks and submitted jobs until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)
	l.logger.Info("simulation loop started", "interval", l.Interval, "day_length", l.DayLength)

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("simulation loop stopped", "ticks", l.ticks)
			return
		case j := <-l.jobs:
			j.done <- l.runJob(j)
		case now := <-ticker.C:
			l.Step(ctx, now.Sub(last))
			last = now
		}
	}
}

func (l *Loop) runJob(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("simulation job panicked", "panic", r)
			err = errors.New("simulation job panicked")
		}
	}()
	return j.fn(j.ctx)
}

// Do runs fn on the loop goroutine and waits for it to finish. It must not be
// called from inside a callback or another job.
func (l *Loop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	j := job{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case l.jobs <- j:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-j.done:
		return err
	case <-l.stopped:
		return ErrLoopStopped
	}
}

// Step advances the clock by dt. Run calls it on every tick; tests call it directly.
func (l *Loop) Step(ctx context.Context, dt time.Duration) {
	l.ticks++
	if l.OnTick != nil {
		l.OnTick(ctx, dt)
	}
	if l.DayLength <= 0 {
		return
	}
	l.dayTime += dt
	for l.dayTime >= l.DayLength {
		l.dayTime -= l.DayLength
		if l.OnDay != nil {
			l.OnDay(ctx)
		}
	}
}

// Ticks is the number of steps taken so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}
