// Command sim runs the enemy behaviour simulation headless against an arena
// and prints what happened.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/automoto/enemyai/assets"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/sim"
	"github.com/automoto/enemyai/systems"
)

const appName = "enemyai"

func main() {
	configPath := flag.String("config", "", "YAML tuning file applied over the defaults")
	arenaName := flag.String("arena", "", "Arena to load (default from config)")
	duration := flag.Float64("duration", 30, "Simulated seconds to run (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (default from config)")
	seed := flag.Int64("seed", 0, "Random seed (default from config)")
	verbose := flag.Bool("v", false, "Log every state change")
	profile := flag.String("profile", "", "Load a saved tuning profile")
	saveProfile := flag.String("save-profile", "", "Save the effective tuning under this name")
	fast := flag.Bool("fast", false, "Step as fast as possible instead of in real time")
	report := flag.Duration("report", 5*time.Second, "Interval between progress reports")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		configPath:  *configPath,
		arena:       *arenaName,
		duration:    *duration,
		tickRate:    *tickRate,
		seed:        *seed,
		profile:     *profile,
		saveProfile: *saveProfile,
		fast:        *fast,
		report:      *report,
	}
	if err := run(ctx, opts); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	arena       string
	duration    float64
	tickRate    int
	seed        int64
	profile     string
	saveProfile string
	fast        bool
	report      time.Duration
}

func run(ctx context.Context, opts options) error {
	if err := systems.InitPersistence(appName); err != nil {
		slog.Warn("persistence unavailable", "err", err)
	}

	if opts.profile != "" {
		found, err := systems.LoadProfile(opts.profile)
		if err != nil {
			return err
		}
		if !found {
			slog.Warn("profile not found", "profile", opts.profile)
		}
	}
	if opts.configPath != "" {
		if err := config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.saveProfile != "" {
		if err := systems.SaveProfile(opts.saveProfile); err != nil {
			return err
		}
		slog.Info("profile saved", "profile", opts.saveProfile)
	}

	name := opts.arena
	if name == "" {
		name = config.Arena.DefaultArena
	}
	arena, err := assets.LoadArena(name)
	if err != nil {
		return err
	}

	tickRate := opts.tickRate
	if tickRate <= 0 {
		tickRate = config.Sim.TickRate
	}
	seed := opts.seed
	if seed == 0 {
		seed = config.Sim.Seed
	}
	var maxTicks uint64
	if opts.duration > 0 {
		maxTicks = uint64(math.Ceil(opts.duration * float64(tickRate)))
	}
	if opts.fast && maxTicks == 0 {
		return errors.New("-fast needs a positive -duration")
	}

	if prev, err := systems.LoadRunStats(); err != nil {
		slog.Warn("previous run unreadable", "err", err)
	} else if prev != nil {
		slog.Info("previous run", "arena", prev.Arena, "ticks", prev.Ticks, "attacks", prev.Attacks, "deaths", prev.Deaths)
	}

	s := sim.New(arena, seed)
	loop := sim.NewLoop(s, tickRate, maxTicks)
	slog.Info("arena loaded",
		"arena", arena.Name,
		"size", fmt.Sprintf("%gx%g", arena.Width, arena.Depth),
		"walls", len(arena.Walls),
		"enemies", len(s.Enemies()),
		"spawners", len(arena.Spawners),
		"seed", seed)

	var progress atomic.Pointer[sim.Stats]
	loop.OnTick = func(s *sim.Simulation) {
		st := s.Stats()
		progress.Store(&st)
	}

	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		var err error
		if opts.fast {
			err = loop.RunFast(gctx)
		} else {
			err = loop.Run(gctx)
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if !opts.fast && opts.report > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(opts.report)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return nil
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					st := progress.Load()
					if st == nil {
						continue
					}
					slog.Info("progress", "ticks", st.Ticks, "attacks", st.Attacks, "deaths", st.Deaths)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	st := s.Stats()
	summary := systems.RunStats{
		Arena:   arena.Name,
		Ticks:   st.Ticks,
		Elapsed: st.Elapsed,
		Spawned: s.Spawned(),
		Attacks: st.Attacks,
		Deaths:  st.Deaths,
	}
	printSummary(s, summary)
	if err := systems.SaveRunStats(summary); err != nil {
		slog.Warn("could not save run stats", "err", err)
	}
	return nil
}

func printSummary(s *sim.Simulation, st systems.RunStats) {
	fmt.Printf("arena %s: %d ticks, %.2fs simulated, %d spawned, %d attacks, %d deaths\n",
		st.Arena, st.Ticks, st.Elapsed, st.Spawned, st.Attacks, st.Deaths)
	for _, e := range s.Enemies() {
		enemy := components.Enemy.Get(e)
		pos := components.Transform.Get(e).Position
		hp := components.Health.Get(e)
		fmt.Printf("  %-12s %-6s at (%5.1f, %5.1f) hp %3.0f/%3.0f\n",
			enemy.TypeName, enemy.State, pos.X, pos.Z, hp.Current, hp.Max)
	}
}
