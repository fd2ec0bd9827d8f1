package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// arriveEpsilon is how close a scripted mover must get to a route point.
const arriveEpsilon = 1e-6

// UpdatePlayer walks the hostile entity along its scripted route, holding at
// each point for Pause seconds.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	for e := range components.Player.Iter(ecs.World) {
		p := components.Player.Get(e)
		if len(p.Route) == 0 {
			continue
		}
		if p.Hold > 0 {
			p.Hold -= dt
			continue
		}

		pose := components.Transform.Get(e)
		goal := p.Route[p.Index]
		next := gamemath.MoveTowards(pose.Position, goal, p.Speed*dt)
		if step := next.Sub(pose.Position).Flat(); step.SqrMagnitude() > 0 {
			pose.Yaw = gamemath.YawOf(step)
		}
		pose.Position = next

		if gamemath.FlatDistance(next, goal) < arriveEpsilon {
			p.Index = (p.Index + 1) % len(p.Route)
			p.Hold = p.Pause
		}
	}
}
