package systems

import (
	"math/rand"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/yohamta/donburi"
)

// fallbackRand serves worlds built without a Random singleton.
var fallbackRand = rand.New(rand.NewSource(config.Sim.Seed))

func clockOf(w donburi.World) *components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e)
	}
	return nil
}

// deltaTime is the length of the current tick in seconds.
func deltaTime(w donburi.World) float64 {
	if c := clockOf(w); c != nil {
		return c.Delta
	}
	return 0
}

func randomSource(w donburi.World) *rand.Rand {
	if e, ok := components.Random.First(w); ok {
		if r := components.Random.Get(e).Rand; r != nil {
			return r
		}
	}
	return fallbackRand
}

func physicsQuery(w donburi.World) components.PhysicsQuery {
	if e, ok := components.PhysicsWorld.First(w); ok {
		return components.PhysicsWorld.Get(e).Query
	}
	return nil
}

func navSampler(w donburi.World) components.NavSampler {
	if e, ok := components.NavSurface.First(w); ok {
		return components.NavSurface.Get(e).Sampler
	}
	return nil
}
