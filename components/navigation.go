package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NavAgent is the pathfinding agent steering an enemy.
type NavAgent interface {
	SetDestination(p gamemath.Vec3)
	ResetPath()
	PathPending() bool
	RemainingDistance() float64
	SetEnabled(enabled bool)
	Enabled() bool
	SetSpeed(speed float64)
}

// NavSampler finds walkable points on the navigation surface.
type NavSampler interface {
	SamplePosition(p gamemath.Vec3, maxDistance float64) (gamemath.Vec3, bool)
}

// Mover is implemented by collaborators that move a transform every tick.
type Mover interface {
	Advance(from gamemath.Vec3, dt float64) gamemath.Vec3
}

type NavigationData struct {
	Agent NavAgent
}

var Navigation = donburi.NewComponentType[NavigationData]()

// NavSurfaceData is the singleton navigation surface.
type NavSurfaceData struct {
	Sampler NavSampler
}

var NavSurface = donburi.NewComponentType[NavSurfaceData]()
