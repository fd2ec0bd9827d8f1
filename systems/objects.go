package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves collision shapes to their entity's transform.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		if e.HasComponent(components.Transform) {
			physics.MoveTo(obj.Object, components.Transform.Get(e).Position)
		} else if obj.Space != nil {
			obj.Update()
		}
	}
}
