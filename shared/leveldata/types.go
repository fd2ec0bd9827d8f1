// Package leveldata parses TMX arena files into plain data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/enemyai/shared/gamemath"

// Arena holds everything the simulation needs from an arena file, in world
// units. TMX x maps to world X and TMX y maps to world Z.
type Arena struct {
	Name        string
	Width       float64
	Depth       float64
	Walls       []Wall
	NavPoints   []gamemath.Vec3
	EnemySpawns []EnemySpawn
	TargetSpawn gamemath.Vec3
	TargetRoute []gamemath.Vec3
	Spawners    []SpawnerSpawn
}

// Wall is an axis-aligned occluder on the ground plane.
type Wall struct {
	X, Z, W, D float64
}

// EnemySpawn places a single enemy when the arena is built.
type EnemySpawn struct {
	Position  gamemath.Vec3
	EnemyType string
}

// SpawnerSpawn places a timed spawner that produces enemies at its own
// position.
type SpawnerSpawn struct {
	Position      gamemath.Vec3
	EnemyType     string
	SpawnInterval float64
	MaxEnemies    int
}
