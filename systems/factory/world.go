package factory

import (
	"math/rand"

	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/yohamta/donburi"
)

// CreateWorld spawns the singleton that carries the clock, the seeded random
// source and the physics and navigation services.
func CreateWorld(w donburi.World, seed int64, query components.PhysicsQuery, sampler components.NavSampler) *donburi.Entry {
	world := archetypes.World.Spawn(w)
	components.Clock.SetValue(world, components.ClockData{})
	components.Random.SetValue(world, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	components.PhysicsWorld.SetValue(world, components.PhysicsWorldData{Query: query})
	components.NavSurface.SetValue(world, components.NavSurfaceData{Sampler: sampler})
	return world
}
