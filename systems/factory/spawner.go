package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateSpawner spawns a timed enemy spawner. Zero values fall back to the
// spawner defaults. The first spawn happens after one full interval.
func CreateSpawner(w donburi.World, enemyType string, interval float64, maxEnemies int, points []gamemath.Vec3, target donburi.Entity) *donburi.Entry {
	if enemyType == "" {
		enemyType = config.Spawner.EnemyType
	}
	if interval <= 0 {
		interval = config.Spawner.SpawnInterval
	}
	if maxEnemies <= 0 {
		maxEnemies = config.Spawner.MaxEnemies
	}

	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		EnemyType:     enemyType,
		SpawnInterval: interval,
		MaxEnemies:    maxEnemies,
		Timer:         interval,
		SpawnPoints:   points,
		Target:        target,
	})
	return spawner
}
