package systems

import (
	"log/slog"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IsKnockedBack reports whether knockback currently owns the entity's
// locomotion.
func IsKnockedBack(e *donburi.Entry) bool {
	return e.HasComponent(components.Knockback) && components.Knockback.Get(e).Active
}

// startKnockback hands locomotion to physics: navigation is disabled, the
// body goes dynamic and takes an impulse of force along direction. A hit
// landing during an active knockback only restarts the recovery timer.
func startKnockback(e *donburi.Entry, direction gamemath.Vec3, force float64) {
	if !e.HasComponent(components.Knockback) {
		return
	}
	kb := components.Knockback.Get(e)
	kb.Timer = kb.RecoveryTime
	if kb.Active {
		return
	}
	kb.Active = true

	if e.HasComponent(components.Navigation) {
		if agent := components.Navigation.Get(e).Agent; agent != nil {
			agent.SetEnabled(false)
		}
	}
	if e.HasComponent(components.Body) {
		if body := components.Body.Get(e).Body; body != nil {
			body.SetKinematic(false)
			body.AddImpulse(direction.Normalized().Scale(force))
		}
	}
	slog.Debug("knockback started", "entity", e.Entity(), "force", force, "recovery", kb.RecoveryTime)
}

// endKnockback returns locomotion to the behaviour state machine.
func endKnockback(e *donburi.Entry, kb *components.KnockbackData) {
	kb.Active = false
	kb.Timer = 0

	if e.HasComponent(components.Body) {
		if body := components.Body.Get(e).Body; body != nil {
			body.SetKinematic(true)
		}
	}
	if e.HasComponent(components.Navigation) {
		if agent := components.Navigation.Get(e).Agent; agent != nil {
			agent.SetEnabled(true)
		}
	}
	slog.Debug("knockback ended", "entity", e.Entity())
}

// UpdateKnockback counts recovery timers down and restores control at zero.
func UpdateKnockback(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	for e := range components.Knockback.Iter(ecs.World) {
		kb := components.Knockback.Get(e)
		if !kb.Active {
			continue
		}
		kb.Timer -= dt
		if expired(kb.Timer) {
			endKnockback(e, kb)
		}
	}
}
