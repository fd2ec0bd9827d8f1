package navigation

import (
	"log/slog"
	"math"

	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
)

// Agent steers one body across a Grid. A destination set during a tick is
// resolved into a path on the next Advance; until then PathPending is true.
type Agent struct {
	grid    *Grid
	speed   float64
	enabled bool

	destination gamemath.Vec3
	hasPath     bool
	pending     bool
	path        []gamemath.Vec3
	remaining   float64

	StoppingEpsilon float64
}

func NewAgent(grid *Grid, speed float64) *Agent {
	return &Agent{
		grid:            grid,
		speed:           speed,
		enabled:         true,
		StoppingEpsilon: config.Navigation.StoppingEpsilon,
	}
}

// SetDestination requests a path to p. Disabled agents ignore it. Repeating
// the current destination keeps the existing path.
func (a *Agent) SetDestination(p gamemath.Vec3) {
	if !a.enabled {
		return
	}
	if a.hasPath && !a.pending && gamemath.FlatDistance(p, a.destination) <= a.StoppingEpsilon {
		return
	}
	a.destination = p
	a.hasPath = true
	a.pending = true
	a.path = nil
	a.remaining = math.Inf(1)
}

// ResetPath drops the current destination and stops the agent.
func (a *Agent) ResetPath() {
	a.hasPath = false
	a.pending = false
	a.path = nil
	a.remaining = 0
}

func (a *Agent) PathPending() bool { return a.pending }

// RemainingDistance is the length of the path still to travel.
func (a *Agent) RemainingDistance() float64 { return a.remaining }

// SetEnabled toggles the agent. Disabling clears the path.
func (a *Agent) SetEnabled(enabled bool) {
	a.enabled = enabled
	if !enabled {
		a.ResetPath()
	}
}

func (a *Agent) Enabled() bool { return a.enabled }

func (a *Agent) SetSpeed(speed float64) { a.speed = speed }

func (a *Agent) Speed() float64 { return a.speed }

// Destination reports the current destination, if any.
func (a *Agent) Destination() (gamemath.Vec3, bool) {
	return a.destination, a.hasPath
}

// Path returns the waypoints still ahead of the agent.
func (a *Agent) Path() []gamemath.Vec3 { return a.path }

// Advance resolves a pending path and moves from along it for dt seconds.
func (a *Agent) Advance(from gamemath.Vec3, dt float64) gamemath.Vec3 {
	if !a.enabled || !a.hasPath {
		return from
	}
	if a.pending {
		a.pending = false
		a.path = a.grid.FindPath(from, a.destination)
		if a.path == nil {
			slog.Debug("no path to destination", "from", from, "to", a.destination)
			a.remaining = 0
			return from
		}
	}

	pos := from
	budget := a.speed * dt
	for len(a.path) > 0 && budget > 0 {
		next := a.path[0]
		next.Y = pos.Y
		d := gamemath.FlatDistance(pos, next)
		if d <= budget {
			pos = next
			budget -= d
			a.path = a.path[1:]
			continue
		}
		pos = gamemath.MoveTowards(pos, next, budget)
		budget = 0
	}
	a.remaining = pathLength(pos, a.path)
	return pos
}

func pathLength(from gamemath.Vec3, path []gamemath.Vec3) float64 {
	total := 0.0
	for _, p := range path {
		total += gamemath.FlatDistance(from, p)
		from = p
	}
	return total
}
