package sim

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/enemyai/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFastStopsAtTickLimit(t *testing.T) {
	config.Reset()
	s := New(openArena(), 1)
	l := NewLoop(s, 60, 30)
	calls := 0
	l.OnTick = func(*Simulation) { calls++ }

	require.NoError(t, l.RunFast(context.Background()))
	assert.Equal(t, uint64(30), s.Stats().Ticks)
	assert.Equal(t, 30, calls)
	assert.InDelta(t, 0.5, s.Stats().Elapsed, 1e-9)
}

func TestRunFastHonoursCancellation(t *testing.T) {
	config.Reset()
	s := New(openArena(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(s, 60, 0).RunFast(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.Stats().Ticks)
}

func TestRunStopsOnContext(t *testing.T) {
	config.Reset()
	s := New(openArena(), 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewLoop(s, 200, 0).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunReachesTickLimit(t *testing.T) {
	config.Reset()
	s := New(openArena(), 1)

	require.NoError(t, NewLoop(s, 500, 5).Run(context.Background()))
	assert.Equal(t, uint64(5), s.Stats().Ticks)
}

func TestNewLoopDefaultsTickRate(t *testing.T) {
	l := NewLoop(nil, 0, 0)
	assert.Equal(t, 60, l.tickRate)
}
