package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DeathEventData is published once when an enemy is torn down.
type DeathEventData struct {
	Entity   donburi.Entity
	TypeName string
	Position gamemath.Vec3
}

// AttackEventData reports an attack swing. Damage resolution happens elsewhere.
type AttackEventData struct {
	Entity   donburi.Entity
	TypeName string
	Position gamemath.Vec3
	Target   gamemath.Vec3
}
