package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the authoritative pose of an entity.
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // radians, clockwise from +Z
}

// Forward is the horizontal facing direction.
func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.Forward(t.Yaw)
}

var Transform = donburi.NewComponentType[TransformData]()
