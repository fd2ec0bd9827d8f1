package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

type DamageEventData struct {
	Amount         float64
	Direction      gamemath.Vec3
	KnockbackForce float64
}

// DamageQueueData collects hits reported between ticks; they are applied in
// arrival order at the start of the next tick.
type DamageQueueData struct {
	Events []DamageEventData
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()
