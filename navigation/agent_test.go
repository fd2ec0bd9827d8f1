package navigation

import (
	"math"
	"testing"

	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentPendingUntilAdvance(t *testing.T) {
	a := NewAgent(newTestGrid(t), 2)
	start := gamemath.Vec3{X: 5, Z: 2}

	a.SetDestination(gamemath.Vec3{X: 5, Z: 12})
	assert.True(t, a.PathPending())
	assert.True(t, math.IsInf(a.RemainingDistance(), 1))

	pos := a.Advance(start, 0.5)
	assert.False(t, a.PathPending())
	assert.InDelta(t, 3, pos.Z, 1e-9)
	assert.InDelta(t, 9, a.RemainingDistance(), 1e-9)
}

func TestAgentArrives(t *testing.T) {
	a := NewAgent(newTestGrid(t), 4)
	pos := gamemath.Vec3{X: 5, Z: 5}
	goal := gamemath.Vec3{X: 15, Z: 5}

	a.SetDestination(goal)
	for i := 0; i < 200 && (a.PathPending() || a.RemainingDistance() > 0); i++ {
		pos = a.Advance(pos, 0.1)
	}
	assert.InDelta(t, 0, gamemath.FlatDistance(pos, goal), 1e-9)
	assert.Equal(t, 0.0, a.RemainingDistance())
}

func TestAgentDisabledIgnoresDestination(t *testing.T) {
	a := NewAgent(newTestGrid(t), 2)
	a.SetDestination(gamemath.Vec3{X: 5, Z: 12})

	a.SetEnabled(false)
	assert.False(t, a.Enabled())
	assert.False(t, a.PathPending())
	_, has := a.Destination()
	assert.False(t, has)

	a.SetDestination(gamemath.Vec3{X: 6, Z: 12})
	_, has = a.Destination()
	assert.False(t, has)

	pos := gamemath.Vec3{X: 5, Z: 2}
	assert.Equal(t, pos, a.Advance(pos, 1))
}

func TestAgentResetPathStops(t *testing.T) {
	a := NewAgent(newTestGrid(t), 2)
	pos := gamemath.Vec3{X: 5, Z: 2}
	a.SetDestination(gamemath.Vec3{X: 5, Z: 12})
	pos = a.Advance(pos, 0.5)

	a.ResetPath()
	assert.Equal(t, pos, a.Advance(pos, 0.5))
	assert.Empty(t, a.Path())
}

func TestAgentRepeatedDestinationKeepsPath(t *testing.T) {
	a := NewAgent(newTestGrid(t), 2)
	goal := gamemath.Vec3{X: 5, Z: 12}
	a.SetDestination(goal)
	a.Advance(gamemath.Vec3{X: 5, Z: 2}, 0.5)

	a.SetDestination(goal)
	assert.False(t, a.PathPending())
	require.NotEmpty(t, a.Path())
}

func TestAgentUnreachableDestination(t *testing.T) {
	a := NewAgent(newTestGrid(t), 2)
	a.SetDestination(gamemath.Vec3{X: 10, Z: 5})

	pos := gamemath.Vec3{X: 5, Z: 5}
	// Goal cell is inside the wall; the nearest walkable cell stands in.
	next := a.Advance(pos, 0.1)
	assert.False(t, a.PathPending())
	assert.NotEqual(t, pos, next)
}
