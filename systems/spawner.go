package systems

import (
	"log/slog"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type spawnRequest struct {
	enemyType string
	position  gamemath.Vec3
	target    donburi.Entity
}

// UpdateSpawners fires each spawner every SpawnInterval seconds until it has
// produced MaxEnemies. Enemies are created after the scan so the spawner query
// is not modified while iterating.
func UpdateSpawners(ecs *ecs.ECS) {
	w := ecs.World
	dt := deltaTime(w)
	rng := randomSource(w)

	var pending []spawnRequest
	for e := range components.Spawner.Iter(w) {
		s := components.Spawner.Get(e)
		s.Timer -= dt
		if !expired(s.Timer) {
			continue
		}
		s.Timer = s.SpawnInterval

		if s.Count >= s.MaxEnemies {
			continue
		}
		if len(s.SpawnPoints) == 0 {
			slog.Warn("spawner has no spawn points", "entity", e.Entity())
			continue
		}
		pending = append(pending, spawnRequest{
			enemyType: s.EnemyType,
			position:  s.SpawnPoints[rng.Intn(len(s.SpawnPoints))],
			target:    s.Target,
		})
		s.Count++
	}

	for _, r := range pending {
		enemy := factory.CreateEnemy(w, r.enemyType, r.position, r.target)
		slog.Debug("enemy spawned", "entity", enemy.Entity(), "type", r.enemyType, "position", r.position)
	}
}
