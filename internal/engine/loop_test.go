package engine_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/storefront_sim/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_StepFiresDays(t *testing.T) {
	l := engine.NewLoop(time.Second, 3*time.Second, nil)
	var ticked time.Duration
	days := 0
	l.OnTick = func(ctx context.Context, dt time.Duration) { ticked += dt }
	l.OnDay = func(ctx context.Context) { days++ }

	for i := 0; i < 7; i++ {
		l.Step(context.Background(), time.Second)
	}

	assert.Equal(t, 7*time.Second, ticked)
	assert.Equal(t, 2, days)
	assert.Equal(t, uint64(7), l.Ticks())
}

func TestLoop_NoDaysWhenDisabled(t *testing.T) {
	l := engine.NewLoop(time.Second, 0, nil)
	l.OnDay = func(ctx context.Context) { t.Fatal("day fired") }
	l.Step(context.Background(), time.Hour)
}

func TestLoop_DoRunsOnLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := engine.NewLoop(10*time.Millisecond, 0, nil)
	var ticks atomic.Int64
	l.OnTick = func(ctx context.Context, dt time.Duration) { ticks.Add(1) }
	go l.Run(ctx)

	counter := 0
	for i := 0; i < 50; i++ {
		require.NoError(t, l.Do(context.Background(), func(ctx context.Context) error {
			counter++
			return nil
		}))
	}
	assert.Equal(t, 50, counter)

	want := errors.New("rejected")
	assert.ErrorIs(t, l.Do(context.Background(), func(ctx context.Context) error { return want }), want)

	assert.Error(t, l.Do(context.Background(), func(ctx context.Context) error { panic("boom") }))

	cancel()
	assert.Eventually(t, func() bool {
		return errors.Is(l.Do(context.Background(), func(ctx context.Context) error { return nil }), engine.ErrLoopStopped)
	}, time.Second, 10*time.Millisecond)
}
