package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the entity holding the loaded arena.
func CreateLevel(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Arena: arena})
	return level
}
