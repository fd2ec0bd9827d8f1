package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PatrolData holds the waypoints discovered at spawn and the patrol cursor.
type PatrolData struct {
	Points    []gamemath.Vec3
	Index     int
	Waiting   bool
	WaitTimer float64
}

// Current returns the waypoint the patrol cursor points at.
func (p *PatrolData) Current() (gamemath.Vec3, bool) {
	if len(p.Points) == 0 {
		return gamemath.Vec3{}, false
	}
	return p.Points[p.Index], true
}

var Patrol = donburi.NewComponentType[PatrolData]()
