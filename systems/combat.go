package systems

import (
	"log/slog"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyDamage resolves one hit: health is clamped into [0, Max]; at zero the
// entity is torn down, otherwise it is knocked back and flashes. It reports
// whether the hit destroyed the entity. Hits on a destroyed or invalid entry
// are ignored.
func ApplyDamage(w donburi.World, e *donburi.Entry, amount float64, direction gamemath.Vec3, force float64) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return false
	}
	hp := components.Health.Get(e)
	if hp.Dead {
		return false
	}

	hp.Current = gamemath.ClampFloat(hp.Current-max(amount, 0), 0, hp.Max)
	if hp.Current <= 0 {
		teardown(w, e, hp)
		return true
	}

	startKnockback(e, direction, max(force, 0))
	startFlash(e)
	return false
}

// QueueDamage records a hit to be applied at the start of the next tick.
func QueueDamage(e *donburi.Entry, amount float64, direction gamemath.Vec3, force float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.DamageQueue) {
		return
	}
	q := components.DamageQueue.Get(e)
	q.Events = append(q.Events, components.DamageEventData{
		Amount:         amount,
		Direction:      direction,
		KnockbackForce: force,
	})
}

// UpdateCombat drains queued damage in arrival order. Entries are collected
// first because teardown removes them from the world.
func UpdateCombat(ecs *ecs.ECS) {
	w := ecs.World

	var hit []*donburi.Entry
	for e := range components.DamageQueue.Iter(w) {
		if len(components.DamageQueue.Get(e).Events) > 0 {
			hit = append(hit, e)
		}
	}

	for _, e := range hit {
		q := components.DamageQueue.Get(e)
		queued := q.Events
		q.Events = nil
		for _, dmg := range queued {
			if ApplyDamage(w, e, dmg.Amount, dmg.Direction, dmg.KnockbackForce) {
				break
			}
		}
	}
}

// teardown removes a dead entity and everything it registered. It runs once;
// hp.Dead guards against a second call.
func teardown(w donburi.World, e *donburi.Entry, hp *components.HealthData) {
	hp.Dead = true

	event := components.DeathEventData{Entity: e.Entity()}
	if e.HasComponent(components.Transform) {
		event.Position = components.Transform.Get(e).Position
	}
	if e.HasComponent(components.Enemy) {
		event.TypeName = components.Enemy.Get(e).TypeName
	}

	if e.HasComponent(components.Navigation) {
		if agent := components.Navigation.Get(e).Agent; agent != nil {
			agent.SetEnabled(false)
		}
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	slog.Debug("entity destroyed", "entity", event.Entity, "type", event.TypeName, "position", event.Position)
	w.Remove(e.Entity())
	DeathEvent.Publish(w, event)
}
