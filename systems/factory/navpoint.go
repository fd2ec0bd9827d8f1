package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
)

// navPointSize is the footprint of a patrol marker's trigger.
const navPointSize = 0.2

// CreateNavPoint spawns a patrol marker that enemies discover at spawn.
func CreateNavPoint(w donburi.World, pos gamemath.Vec3) *donburi.Entry {
	point := archetypes.NavPoint.Spawn(w)
	components.Transform.SetValue(point, components.TransformData{Position: pos})

	obj := physics.NewObjectAt(pos, navPointSize, navPointSize, tags.ResolvNavPoint)
	obj.Data = point
	components.Object.SetValue(point, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return point
}
