package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the collision space covering width x depth world units
// with cells cellSize units wide.
func CreateSpace(w donburi.World, width, depth float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := physics.NewSpace(width, depth, float64(cellSize))
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the space singleton, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
