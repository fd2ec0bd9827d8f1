package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bokoblin(t *testing.T) config.EnemyTypeConfig {
	t.Helper()
	config.Reset()
	typ, _ := config.EnemyType("Bokoblin")
	return typ
}

func TestBuildOrbitRingOpenGround(t *testing.T) {
	typ := bokoblin(t)
	center := gamemath.Vec3{X: 10, Z: 10}

	points, start := BuildOrbitRing(&fakeSampler{}, &typ, center, rand.New(rand.NewSource(1)))
	require.Len(t, points, typ.OrbitPointCount)
	assert.GreaterOrEqual(t, start, 0)
	assert.Less(t, start, len(points))

	for _, p := range points {
		assert.InDelta(t, typ.CircleRadius, gamemath.Distance(p, center), 1e-9)
	}
	// First candidate is straight along +Z.
	assert.InDelta(t, 15, points[0].Z, 1e-9)
}

func TestBuildOrbitRingIsIdempotent(t *testing.T) {
	typ := bokoblin(t)
	center := gamemath.Vec3{X: 3, Z: -2}
	sampler := &fakeSampler{blocked: func(p gamemath.Vec3) bool { return p.X > 6 }}

	a, startA := BuildOrbitRing(sampler, &typ, center, rand.New(rand.NewSource(9)))
	b, startB := BuildOrbitRing(sampler, &typ, center, rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
	assert.Equal(t, startA, startB)
}

func TestBuildOrbitRingSpacing(t *testing.T) {
	typ := bokoblin(t)
	typ.MinPointDistance = 3.5 // adjacent candidates at radius 5 are ~3.09 apart
	center := gamemath.Vec3{}

	points, _ := BuildOrbitRing(&fakeSampler{}, &typ, center, rand.New(rand.NewSource(1)))
	require.GreaterOrEqual(t, len(points), components.MinOrbitPoints)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, gamemath.Distance(points[i], points[i-1]), typ.MinPointDistance)
	}
}

func TestBuildOrbitRingRejectsPointsOnTarget(t *testing.T) {
	typ := bokoblin(t)
	center := gamemath.Vec3{X: 1, Z: 1}
	// Every sample snaps onto the target itself.
	sampler := snapSampler{to: center}

	points, start := BuildOrbitRing(sampler, &typ, center, rand.New(rand.NewSource(1)))
	assert.Empty(t, points)
	assert.Equal(t, 0, start)
}

func TestBuildOrbitRingFallbackRadius(t *testing.T) {
	typ := bokoblin(t)
	center := gamemath.Vec3{}
	// Only the inner circle is navigable, except for two outer points.
	outerAllowed := 0
	sampler := &fakeSampler{blocked: func(p gamemath.Vec3) bool {
		if gamemath.Distance(p, center) > typ.CircleRadius*0.9 {
			outerAllowed++
			return outerAllowed > 2
		}
		return false
	}}

	points, _ := BuildOrbitRing(sampler, &typ, center, rand.New(rand.NewSource(1)))
	require.Len(t, points, components.MinOrbitPoints)
	assert.InDelta(t, typ.CircleRadius, gamemath.Distance(points[0], center), 1e-9)
	assert.InDelta(t, typ.CircleRadius, gamemath.Distance(points[1], center), 1e-9)
	assert.InDelta(t, typ.CircleRadius*typ.OrbitFallbackScale, gamemath.Distance(points[2], center), 1e-9)
}

func TestBuildOrbitRingFailure(t *testing.T) {
	typ := bokoblin(t)
	sampler := &fakeSampler{blocked: func(gamemath.Vec3) bool { return true }}

	points, start := BuildOrbitRing(sampler, &typ, gamemath.Vec3{}, rand.New(rand.NewSource(1)))
	assert.Empty(t, points)
	assert.Equal(t, 0, start)
	assert.Nil(t, func() []gamemath.Vec3 { p, _ := BuildOrbitRing(nil, &typ, gamemath.Vec3{}, nil); return p }())
}

type snapSampler struct{ to gamemath.Vec3 }

func (s snapSampler) SamplePosition(gamemath.Vec3, float64) (gamemath.Vec3, bool) {
	return s.to, true
}
