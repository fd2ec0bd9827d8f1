package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/yohamta/donburi/ecs"
)

// TryAttack starts an attack unless the cycle is still cooling down.
func TryAttack(a *components.AttackData) bool {
	if a.OnCooldown() {
		return false
	}
	a.Remaining = a.Cooldown
	a.IsAttacking = a.Remaining > 0
	a.Count++
	return true
}

// tickCooldown counts an attack cycle down by dt.
func tickCooldown(a *components.AttackData, dt float64) {
	if a.Remaining <= 0 {
		return
	}
	a.Remaining -= dt
	if expired(a.Remaining) {
		a.Remaining = 0
		a.IsAttacking = false
	}
}

// UpdateAttackCooldowns runs every tick regardless of behaviour state or
// knockback.
func UpdateAttackCooldowns(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	for e := range components.Attack.Iter(ecs.World) {
		tickCooldown(components.Attack.Get(e), dt)
	}
}
