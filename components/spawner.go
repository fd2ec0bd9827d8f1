package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	EnemyType     string
	SpawnInterval float64
	MaxEnemies    int
	Timer         float64
	Count         int
	SpawnPoints   []gamemath.Vec3
	Target        donburi.Entity // handed to every spawned enemy
}

var Spawner = donburi.NewComponentType[SpawnerData]()
