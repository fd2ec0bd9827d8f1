package systems

import (
	"math"
	"testing"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/navigation"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWalker(t *testing.T) (*donburi.Entry, *navigation.Agent) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	w := donburi.NewWorld()
	grid := navigation.NewGrid(nil, 20, 20, config.Navigation.CellSize, config.Navigation.AgentClearance)
	factory.CreateWorld(w, 1, nil, grid)
	agent := navigation.NewAgent(grid, 0)
	e := factory.CreateEnemyWithPorts(w, "Bokoblin", gamemath.Vec3{X: 5, Z: 5}, 0, factory.EnemyPorts{
		Agent: agent,
		Body:  &fakeBody{},
	})
	return e, agent
}

func TestLocomotionFollowsAgentAndTurns(t *testing.T) {
	e, agent := newWalker(t)
	agent.SetDestination(gamemath.Vec3{X: 10, Z: 5})

	advanceBody(e, 0.25)

	pose := components.Transform.Get(e)
	// Calm speed 3.5 for a quarter second.
	assert.InDelta(t, 5.875, pose.Position.X, 1e-9)
	assert.InDelta(t, 5, pose.Position.Z, 1e-9)
	// 120 degrees per second caps the turn at 30 degrees.
	assert.InDelta(t, math.Pi/6, pose.Yaw, 1e-9)
}

func TestLocomotionKeepsBehaviourFacing(t *testing.T) {
	e, agent := newWalker(t)
	components.Enemy.Get(e).FacingTarget = true
	agent.SetDestination(gamemath.Vec3{X: 10, Z: 5})

	advanceBody(e, 0.25)

	assert.Greater(t, components.Transform.Get(e).Position.X, 5.0)
	assert.Equal(t, 0.0, components.Transform.Get(e).Yaw)
}

func TestLocomotionIdleWhileAgentDisabled(t *testing.T) {
	e, agent := newWalker(t)
	agent.SetDestination(gamemath.Vec3{X: 10, Z: 5})
	agent.SetEnabled(false)

	advanceBody(e, 0.25)

	assert.Equal(t, gamemath.Vec3{X: 5, Z: 5}, components.Transform.Get(e).Position)
}

func TestUpdateObjectsFollowsTransform(t *testing.T) {
	config.Reset()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 20, 20, 2)
	player := factory.CreatePlayer(w, gamemath.Vec3{X: 2, Z: 2}, nil)
	components.Transform.Get(player).Position = gamemath.Vec3{X: 8, Z: 3}

	e := ecs.NewECS(w)
	e.AddSystem(UpdateObjects)
	e.Update()

	obj := components.Object.Get(player)
	r := config.Target.Radius
	s := config.Arena.PixelsPerUnit
	assert.InDelta(t, (8-r)*s, obj.X, 1e-9)
	assert.InDelta(t, (3-r)*s, obj.Y, 1e-9)
	center := physics.Center(obj.Object)
	assert.InDelta(t, 8, center.X, 1e-9)
	assert.InDelta(t, 3, center.Z, 1e-9)
}
