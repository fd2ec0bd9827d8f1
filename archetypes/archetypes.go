package archetypes

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.State,
		components.Transform,
		components.Object,
		components.Target,
		components.Patrol,
		components.Orbit,
		components.Attack,
		components.Health,
		components.Knockback,
		components.DamageQueue,
		components.Navigation,
		components.Body,
		components.Animator,
		components.Surfaces,
		components.Flash,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	NavPoint = newArchetype(
		tags.NavPoint,
		components.Transform,
		components.Object,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	World = newArchetype(
		components.Clock,
		components.Random,
		components.PhysicsWorld,
		components.NavSurface,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
