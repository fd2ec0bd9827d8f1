// Package sim assembles the enemy behaviour systems into a steppable world.
package sim

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/leveldata"
	"github.com/automoto/enemyai/systems"
	"github.com/automoto/enemyai/systems/factory"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Stats counts what happened during a run.
type Stats struct {
	Ticks   uint64
	Elapsed float64
	Attacks int
	Deaths  int
}

// Simulation owns an ECS world built from an arena.
type Simulation struct {
	World  donburi.World
	ECS    *ecs.ECS
	Arena  *leveldata.Arena
	Target *donburi.Entry

	stats Stats
}

// New builds a simulation for arena. Identical seeds replay identically.
func New(arena *leveldata.Arena, seed int64) *Simulation {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	AddSystems(e)

	s := &Simulation{
		World: world,
		ECS:   e,
		Arena: arena,
	}
	s.Target = factory.BuildArena(world, arena, seed)

	systems.AttackEvent.Subscribe(world, func(w donburi.World, _ components.AttackEventData) {
		s.stats.Attacks++
	})
	systems.DeathEvent.Subscribe(world, func(w donburi.World, _ components.DeathEventData) {
		s.stats.Deaths++
	})

	return s
}

// AddSystems registers the behaviour systems in tick order.
func AddSystems(e *ecs.ECS) {
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateKnockback)
	e.AddSystem(systems.UpdateAttackCooldowns)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateSpawners)
	e.AddSystem(processEvents)
}

func processEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// Step advances the world by one tick of dt seconds.
func (s *Simulation) Step(dt float64) {
	if e, ok := components.Clock.First(s.World); ok {
		components.Clock.Get(e).Delta = dt
	}
	s.ECS.Update()
	s.stats.Ticks++
	s.stats.Elapsed += dt
}

// Stats returns the counters accumulated so far.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Enemies returns every live enemy entry.
func (s *Simulation) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	for e := range tags.Enemy.Iter(s.World) {
		out = append(out, e)
	}
	return out
}

// Spawned is the number of enemies spawners have produced.
func (s *Simulation) Spawned() int {
	n := 0
	for e := range components.Spawner.Iter(s.World) {
		n += components.Spawner.Get(e).Count
	}
	return n
}
