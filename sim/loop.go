package sim

import (
	"context"
	"log/slog"
	"time"
)

// Loop drives a Simulation at a fixed tick rate until its context ends or
// the optional tick limit is reached.
type Loop struct {
	sim      *Simulation
	tickRate int
	maxTicks uint64 // zero runs until cancelled

	// OnTick runs after every step on the loop goroutine.
	OnTick func(s *Simulation)
}

func NewLoop(s *Simulation, tickRate int, maxTicks uint64) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{sim: s, tickRate: tickRate, maxTicks: maxTicks}
}

// Run ticks in real time. It returns nil when the tick limit is reached and
// ctx.Err() when cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	slog.Info("simulation loop started", "tick_rate", l.tickRate, "max_ticks", l.maxTicks)

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopped", "ticks", l.sim.Stats().Ticks)
			return ctx.Err()
		case <-ticker.C:
			if l.tick() {
				slog.Info("simulation loop finished", "ticks", l.sim.Stats().Ticks)
				return nil
			}
		}
	}
}

// RunFast steps as quickly as possible, checking ctx between ticks. It needs
// a tick limit.
func (l *Loop) RunFast(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.tick() {
			return nil
		}
	}
}

// tick steps once and reports whether the tick limit has been reached.
func (l *Loop) tick() bool {
	l.sim.Step(1 / float64(l.tickRate))
	if l.OnTick != nil {
		l.OnTick(l.sim)
	}
	return l.maxTicks > 0 && l.sim.Stats().Ticks >= l.maxTicks
}
