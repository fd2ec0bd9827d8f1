package factory

import (
	"github.com/automoto/enemyai/components"
	cfg "github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/navigation"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/shared/leveldata"
	"github.com/yohamta/donburi"
)

// BuildArena populates w from arena: the world singleton, the collision
// space and its walls, the navigation grid, patrol markers, the hostile
// entity, initial enemies and spawners. It returns the hostile entity.
//
// Walls go in before the grid is built; markers go in before enemies so
// patrol discovery can see them.
func BuildArena(w donburi.World, arena *leveldata.Arena, seed int64) *donburi.Entry {
	CreateLevel(w, arena)

	spaceEntry := CreateSpace(w, arena.Width, arena.Depth, cfg.Arena.SpaceCellSize)
	space := components.Space.Get(spaceEntry)
	for _, wall := range arena.Walls {
		CreateWall(w, wall.X, wall.Z, wall.W, wall.D)
	}

	grid := navigation.NewGrid(space, arena.Width, arena.Depth, cfg.Navigation.CellSize, cfg.Navigation.AgentClearance)
	CreateWorld(w, seed, physics.NewWorld(space), grid)

	for _, p := range arena.NavPoints {
		CreateNavPoint(w, p)
	}

	player := CreatePlayer(w, arena.TargetSpawn, arena.TargetRoute)

	for _, s := range arena.EnemySpawns {
		CreateEnemy(w, s.EnemyType, s.Position, player.Entity())
	}

	for _, s := range arena.Spawners {
		CreateSpawner(w, s.EnemyType, s.SpawnInterval, s.MaxEnemies, []gamemath.Vec3{s.Position}, player.Entity())
	}

	return player
}
