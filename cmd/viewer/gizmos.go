package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/fonts"
	"github.com/automoto/enemyai/navigation"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	background   = color.RGBA{24, 26, 30, 255}
	wallColor    = color.RGBA{100, 100, 100, 255}
	navPointCol  = color.RGBA{0, 200, 200, 255}
	targetColor  = color.RGBA{0, 120, 255, 255}
	rangeColor   = color.RGBA{255, 255, 0, 60}
	fovColor     = color.RGBA{255, 255, 0, 140}
	orbitColor   = color.RGBA{0, 255, 0, 160}
	orbitCurrent = color.RGBA{0, 255, 0, 255}
	pathColor    = color.RGBA{255, 140, 0, 200}
	barBack      = color.RGBA{80, 0, 0, 255}
	barFill      = color.RGBA{0, 200, 0, 255}
)

// arcSegments is how many line segments approximate the view cone edge.
const arcSegments = 16

func (g *Game) drawArena(screen *ebiten.Image) {
	screen.Fill(background)

	for _, w := range g.arena.Walls {
		x, y := g.screenPos(gamemath.Vec3{X: w.X, Z: w.Z})
		vector.FillRect(screen, x, y, float32(w.W*g.scale), float32(w.D*g.scale), wallColor, false)
	}
	for _, p := range g.arena.NavPoints {
		x, y := g.screenPos(p)
		vector.StrokeCircle(screen, x, y, 4, 1, navPointCol, true)
	}
	if len(g.arena.TargetRoute) > 1 {
		g.polyline(screen, g.arena.TargetRoute[0], g.arena.TargetRoute[1:], 1, color.RGBA{0, 80, 160, 255})
	}
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	target := g.sim.Target
	if target.Valid() {
		pos := components.Transform.Get(target).Position
		x, y := g.screenPos(pos)
		vector.DrawFilledCircle(screen, x, y, float32(config.Target.Radius*g.scale), targetColor, true)
	}

	for _, e := range g.sim.Enemies() {
		if g.gizmos {
			g.drawGizmos(screen, e)
		}
		g.drawEnemy(screen, e)
	}
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	pose := components.Transform.Get(e)
	x, y := g.screenPos(pose.Position)
	r := float32(enemy.TypeConfig.Radius * g.scale)

	body := enemy.TypeConfig.TintColor
	if set, ok := components.Surfaces.Get(e).Sink.(*components.SurfaceSet); ok && len(set.Items) > 0 {
		body = set.Items[0].Current
	}
	vector.DrawFilledCircle(screen, x, y, r, body, true)

	nx, ny := g.screenPos(pose.Position.Add(pose.Forward().Scale(enemy.TypeConfig.Radius * 1.6)))
	vector.StrokeLine(screen, x, y, nx, ny, 2, color.White, true)

	hp := components.Health.Get(e)
	barW := 2 * r
	vector.FillRect(screen, x-r, y-r-6, barW, 3, barBack, false)
	vector.FillRect(screen, x-r, y-r-6, barW*float32(hp.Fraction()), 3, barFill, false)

	label := enemy.State.String()
	if components.Knockback.Get(e).Active {
		label = "Knockback"
	}
	text.Draw(screen, label, fonts.Small.Get(), int(x-r), int(y-r-9), color.White)
}

// drawGizmos draws what an enemy perceives and where it is heading.
func (g *Game) drawGizmos(screen *ebiten.Image, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	typ := enemy.TypeConfig
	pose := components.Transform.Get(e)
	x, y := g.screenPos(pose.Position)

	vector.StrokeCircle(screen, x, y, float32(typ.DetectionRange*g.scale), 1, rangeColor, true)

	half := typ.FieldOfView / 2 * math.Pi / 180
	prev := pose.Position.Add(gamemath.Forward(pose.Yaw - half).Scale(typ.DetectionRange))
	px, py := g.screenPos(prev)
	vector.StrokeLine(screen, x, y, px, py, 1, fovColor, true)
	for i := 1; i <= arcSegments; i++ {
		a := pose.Yaw - half + 2*half*float64(i)/arcSegments
		next := pose.Position.Add(gamemath.Forward(a).Scale(typ.DetectionRange))
		nx, ny := g.screenPos(next)
		vector.StrokeLine(screen, px, py, nx, ny, 1, fovColor, true)
		px, py = nx, ny
	}
	vector.StrokeLine(screen, x, y, px, py, 1, fovColor, true)

	if agent, ok := components.Navigation.Get(e).Agent.(*navigation.Agent); ok && len(agent.Path()) > 0 {
		g.polyline(screen, pose.Position, agent.Path(), 1, pathColor)
	}

	orbit := components.Orbit.Get(e)
	if enemy.State == config.StateCircle && orbit.Usable() {
		for i, p := range orbit.Points {
			ox, oy := g.screenPos(p)
			if i == orbit.Index {
				vector.DrawFilledCircle(screen, ox, oy, 4, orbitCurrent, true)
				continue
			}
			vector.StrokeCircle(screen, ox, oy, 3, 1, orbitColor, true)
		}
	}
}

func (g *Game) polyline(screen *ebiten.Image, from gamemath.Vec3, points []gamemath.Vec3, width float32, c color.Color) {
	x0, y0 := g.screenPos(from)
	for _, p := range points {
		x1, y1 := g.screenPos(p)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
		x0, y0 = x1, y1
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.sim.Stats()
	status := "running"
	if g.paused {
		status = "paused"
	}
	control := "route"
	if g.manual {
		control = "manual"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%s  t=%.1fs  enemies=%d  attacks=%d  deaths=%d  target=%s  fps=%.0f",
		status, st.Elapsed, len(g.sim.Enemies()), st.Attacks, st.Deaths, control, ebiten.ActualFPS()), 4, 4)
	ebitenutil.DebugPrintAt(screen,
		"SPACE pause  . step  M manual target  arrows move  H hit nearest  G gizmos  R reset", 4, 20)
}
