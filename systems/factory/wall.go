package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
)

// CreateWall spawns a solid occluder with its top-left corner at (x, z).
func CreateWall(w donburi.World, x, z, width, depth float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := physics.NewObject(x, z, width, depth, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
