package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MinOrbitPoints is the smallest ring that can be circled.
const MinOrbitPoints = 3

// OrbitData is the ring of navigable points used while circling a target.
type OrbitData struct {
	Points []gamemath.Vec3
	Index  int
	Center gamemath.Vec3 // target position the ring was last built around
}

// Usable reports whether the ring has enough points to circle.
func (o *OrbitData) Usable() bool {
	return len(o.Points) >= MinOrbitPoints
}

// Current returns the ring point the orbit cursor points at.
func (o *OrbitData) Current() (gamemath.Vec3, bool) {
	if !o.Usable() {
		return gamemath.Vec3{}, false
	}
	return o.Points[o.Index], true
}

// Advance moves the cursor to the next ring point, wrapping.
func (o *OrbitData) Advance() gamemath.Vec3 {
	o.Index = (o.Index + 1) % len(o.Points)
	return o.Points[o.Index]
}

// Clear drops the ring so nothing stale is followed or drawn.
func (o *OrbitData) Clear() {
	o.Points = o.Points[:0]
	o.Index = 0
}

var Orbit = donburi.NewComponentType[OrbitData]()
