package components

import "github.com/yohamta/donburi"

// AttackData is the cooldown-gated attack cycle.
type AttackData struct {
	Cooldown    float64 // configured seconds between attacks
	Remaining   float64 // seconds until the next attack is allowed
	IsAttacking bool    // true while Remaining > 0 after an attack
	Count       int     // attacks started, for overlays
}

// OnCooldown reports whether an attack is currently blocked.
func (a *AttackData) OnCooldown() bool {
	return a.Remaining > 0
}

var Attack = donburi.NewComponentType[AttackData]()
