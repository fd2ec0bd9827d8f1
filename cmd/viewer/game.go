package main

import (
	"math"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/shared/leveldata"
	"github.com/automoto/enemyai/sim"
	"github.com/automoto/enemyai/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Damage dealt by the debug hit key.
const (
	debugDamage    = 25
	debugKnockback = 6
)

// Game adapts a Simulation to ebiten.Game.
type Game struct {
	arena *leveldata.Arena
	seed  int64
	scale float64

	sim    *sim.Simulation
	input  input
	paused bool
	manual bool // arrow keys drive the target instead of its route
	gizmos bool
}

func NewGame(arena *leveldata.Arena, seed int64, scale float64) *Game {
	return &Game{
		arena:  arena,
		seed:   seed,
		scale:  scale,
		sim:    sim.New(arena, seed),
		gizmos: true,
	}
}

func (g *Game) Update() error {
	g.input.update()

	switch {
	case g.input.justPressed(actionReset):
		g.sim = sim.New(g.arena, g.seed)
		g.manual = false
	case g.input.justPressed(actionPause):
		g.paused = !g.paused
	case g.input.justPressed(actionGizmos):
		g.gizmos = !g.gizmos
	case g.input.justPressed(actionManual):
		g.toggleManual()
	case g.input.justPressed(actionHit):
		g.hitNearestEnemy()
	}

	if g.paused && !g.input.justPressed(actionStep) {
		return nil
	}
	dt := 1 / float64(ebiten.TPS())
	if g.manual {
		g.steerTarget(dt)
	}
	g.sim.Step(dt)
	return nil
}

func (g *Game) toggleManual() {
	g.manual = !g.manual
	p := components.Player.Get(g.sim.Target)
	if g.manual {
		p.Route = nil
	} else {
		p.Route = g.arena.TargetRoute
		p.Index = 0
	}
}

func (g *Game) steerTarget(dt float64) {
	var dir gamemath.Vec3
	if g.input.pressed(actionMoveLeft) {
		dir.X--
	}
	if g.input.pressed(actionMoveRight) {
		dir.X++
	}
	if g.input.pressed(actionMoveUp) {
		dir.Z--
	}
	if g.input.pressed(actionMoveDown) {
		dir.Z++
	}
	dir = dir.Normalized()
	if dir == gamemath.Zero {
		return
	}

	pose := components.Transform.Get(g.sim.Target)
	next := pose.Position.Add(dir.Scale(config.Target.Speed * dt))
	next.X = gamemath.ClampFloat(next.X, 0, g.arena.Width)
	next.Z = gamemath.ClampFloat(next.Z, 0, g.arena.Depth)
	pose.Position = next
	pose.Yaw = gamemath.YawOf(dir)
}

// hitNearestEnemy damages the enemy closest to the target, pushing it away
// from the target.
func (g *Game) hitNearestEnemy() {
	targetPos := components.Transform.Get(g.sim.Target).Position
	best := math.Inf(1)
	var nearest *donburi.Entry
	for _, e := range g.sim.Enemies() {
		if d := gamemath.Distance(components.Transform.Get(e).Position, targetPos); d < best {
			best = d
			nearest = e
		}
	}
	if nearest == nil {
		return
	}
	away := components.Transform.Get(nearest).Position.Sub(targetPos)
	systems.QueueDamage(nearest, debugDamage, away, debugKnockback)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	g.drawEntities(screen)
	g.drawHUD(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(math.Ceil(g.arena.Width * g.scale)), int(math.Ceil(g.arena.Depth * g.scale))
}

// screenPos maps a world position on the ground plane to screen pixels.
func (g *Game) screenPos(p gamemath.Vec3) (float32, float32) {
	return float32(p.X * g.scale), float32(p.Z * g.scale)
}
