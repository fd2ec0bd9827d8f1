package sim

import (
	"testing"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/shared/leveldata"
	"github.com/automoto/enemyai/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func openArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name:  "open",
		Width: 30,
		Depth: 30,
		Walls: []leveldata.Wall{
			{X: 0, Z: 0, W: 30, D: 1},
			{X: 0, Z: 29, W: 30, D: 1},
			{X: 0, Z: 0, W: 1, D: 30},
			{X: 29, Z: 0, W: 1, D: 30},
		},
		NavPoints: []gamemath.Vec3{
			{X: 10, Z: 5},
			{X: 20, Z: 5},
		},
		EnemySpawns: []leveldata.EnemySpawn{
			{Position: gamemath.Vec3{X: 15, Z: 8}, EnemyType: "Bokoblin"},
		},
		TargetSpawn: gamemath.Vec3{X: 15, Z: 15},
	}
}

func TestEnemyClosesInAndAttacks(t *testing.T) {
	config.Reset()
	s := New(openArena(), 42)
	enemies := s.Enemies()
	require.Len(t, enemies, 1)
	enemy := enemies[0]

	assert.Len(t, components.Patrol.Get(enemy).Points, 2)

	s.Step(dt)
	assert.Equal(t, config.StateChase, components.Enemy.Get(enemy).State)

	for i := 0; i < 600; i++ {
		s.Step(dt)
	}
	assert.Equal(t, config.StateCircle, components.Enemy.Get(enemy).State)
	assert.Greater(t, s.Stats().Attacks, 0)
	assert.Equal(t, uint64(601), s.Stats().Ticks)

	target := components.Transform.Get(s.Target).Position
	pos := components.Transform.Get(enemy).Position
	assert.LessOrEqual(t, gamemath.Distance(pos, target), 3.5)
}

func TestEnemySpotsTargetAtFractionalPositions(t *testing.T) {
	config.Reset()
	for x := 14.0; x <= 16.0; x += 0.1 {
		arena := openArena()
		arena.TargetSpawn = gamemath.Vec3{X: x, Z: 15}
		s := New(arena, 1)
		enemy := s.Enemies()[0]

		s.Step(dt)
		assert.Equal(t, config.StateChase, components.Enemy.Get(enemy).State, "target at x=%.1f", x)
	}
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	config.Reset()
	run := func() []gamemath.Vec3 {
		s := New(openArena(), 7)
		for i := 0; i < 300; i++ {
			s.Step(dt)
		}
		var out []gamemath.Vec3
		for _, e := range s.Enemies() {
			out = append(out, components.Transform.Get(e).Position)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestDeathIsCounted(t *testing.T) {
	config.Reset()
	s := New(openArena(), 1)
	enemy := s.Enemies()[0]

	systems.QueueDamage(enemy, 1000, gamemath.Vec3{X: 1}, 1)
	s.Step(dt)

	assert.Empty(t, s.Enemies())
	assert.Equal(t, 1, s.Stats().Deaths)
}

func TestSpawnersProduceEnemies(t *testing.T) {
	config.Reset()
	arena := openArena()
	arena.EnemySpawns = nil
	arena.Spawners = []leveldata.SpawnerSpawn{
		{Position: gamemath.Vec3{X: 5, Z: 25}, EnemyType: "Moblin", SpawnInterval: 1, MaxEnemies: 2},
	}
	s := New(arena, 3)
	require.Empty(t, s.Enemies())

	for i := 0; i < 60*3; i++ {
		s.Step(dt)
	}
	assert.Len(t, s.Enemies(), 2)
	assert.Equal(t, 2, s.Spawned())
}
