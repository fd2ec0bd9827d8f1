// Command viewer runs the enemy behaviour simulation in a window and draws
// its perception, navigation and orbit state on top of the arena.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/automoto/enemyai/assets"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file applied over the defaults")
	arenaName := flag.String("arena", "", "Arena to load (default from config)")
	scale := flag.Float64("scale", 20, "Screen pixels per world unit")
	seed := flag.Int64("seed", 0, "Random seed (default from config)")
	verbose := flag.Bool("v", false, "Log every state change")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			fatal("could not load config", err)
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		fatal("could not load fonts", err)
	}

	name := *arenaName
	if name == "" {
		name = config.Arena.DefaultArena
	}
	arena, err := assets.LoadArena(name)
	if err != nil {
		fatal("could not load arena", err)
	}
	if *seed == 0 {
		*seed = config.Sim.Seed
	}

	g := NewGame(arena, *seed, *scale)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("enemyai - " + arena.Name)
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		fatal("viewer stopped", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
