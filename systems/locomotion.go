package systems

import (
	"math"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion moves bodies. Dynamic bodies integrate their own velocity;
// kinematic bodies follow their navigation agent and turn toward their
// heading unless behaviour already turned them this tick.
func UpdateLocomotion(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	for e := range components.Body.Iter(ecs.World) {
		advanceBody(e, dt)
	}
}

func advanceBody(e *donburi.Entry, dt float64) {
	pose := components.Transform.Get(e)
	body := components.Body.Get(e).Body
	if body == nil {
		return
	}

	if !body.Kinematic() {
		if m, ok := body.(components.Mover); ok {
			pose.Position = m.Advance(pose.Position, dt)
		}
		return
	}

	if !e.HasComponent(components.Navigation) {
		return
	}
	agent := components.Navigation.Get(e).Agent
	m, ok := agent.(components.Mover)
	if !ok || !agent.Enabled() {
		return
	}

	prev := pose.Position
	pose.Position = m.Advance(prev, dt)

	if e.HasComponent(components.Enemy) && components.Enemy.Get(e).FacingTarget {
		return
	}
	heading := pose.Position.Sub(prev).Flat()
	if heading.SqrMagnitude() > 1e-9 {
		maxTurn := config.Navigation.AngularSpeed * math.Pi / 180 * dt
		pose.Yaw = gamemath.MoveTowardsAngle(pose.Yaw, gamemath.YawOf(heading), maxTurn)
	}
}
