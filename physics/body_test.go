package physics

import (
	"testing"

	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/stretchr/testify/assert"
)

func newBody(f *fixture, x, z, mass float64) *Body {
	obj := NewObjectAt(gamemath.Vec3{X: x, Z: z}, 0.8, 0.8, tags.ResolvEnemy)
	f.space.Add(obj)
	return NewBody(obj, mass)
}

func TestBodyIgnoresImpulseWhileKinematic(t *testing.T) {
	f := newFixture()
	b := newBody(f, 10, 10, 1)

	assert.True(t, b.Kinematic())
	b.AddImpulse(gamemath.Vec3{X: 5})
	assert.Equal(t, gamemath.Zero, b.Velocity)

	pos := gamemath.Vec3{X: 10, Z: 10}
	assert.Equal(t, pos, b.Advance(pos, 0.1))
}

func TestBodyImpulseScaledByMass(t *testing.T) {
	f := newFixture()
	b := newBody(f, 10, 10, 2)
	b.SetKinematic(false)

	b.AddImpulse(gamemath.Vec3{X: 4, Y: 3})
	assert.Equal(t, gamemath.Vec3{X: 2}, b.Velocity)
}

func TestBodyMovesAndDecelerates(t *testing.T) {
	f := newFixture()
	b := newBody(f, 10, 10, 1)
	b.SetKinematic(false)
	b.AddImpulse(gamemath.Vec3{Z: 5})

	pos := gamemath.Vec3{X: 10, Z: 10}
	next := b.Advance(pos, 0.1)
	assert.Greater(t, next.Z, pos.Z)
	assert.InDelta(t, pos.X, next.X, 1e-9)
	assert.Less(t, b.Velocity.Z, 5.0)
}

func TestBodyStopsAtWall(t *testing.T) {
	f := newFixture()
	f.add(12, 8, 1, 4, tags.ResolvSolid)
	b := newBody(f, 10, 10, 1)
	b.SetKinematic(false)
	b.Drag = 0
	b.AddImpulse(gamemath.Vec3{X: 20})

	pos := gamemath.Vec3{X: 10, Z: 10}
	for i := 0; i < 20; i++ {
		pos = b.Advance(pos, 0.05)
	}
	assert.InDelta(t, 12-0.4, pos.X, 1e-6)
	assert.Equal(t, 0.0, b.Velocity.X)
}

func TestBodySetKinematicClearsVelocity(t *testing.T) {
	f := newFixture()
	b := newBody(f, 10, 10, 1)
	b.SetKinematic(false)
	b.AddImpulse(gamemath.Vec3{X: 3})

	b.SetKinematic(true)
	assert.Equal(t, gamemath.Zero, b.Velocity)
}

func TestBodyStopsAtWallFromFractionalOffsets(t *testing.T) {
	for _, z := range []float64{10, 10.25, 10.5, 10.75} {
		f := newFixture()
		f.add(12, 8, 1, 4, tags.ResolvSolid)
		b := newBody(f, 10, z, 1)
		b.SetKinematic(false)
		b.Drag = 0
		b.AddImpulse(gamemath.Vec3{X: 20})

		pos := gamemath.Vec3{X: 10, Z: z}
		for i := 0; i < 40; i++ {
			pos = b.Advance(pos, 0.05)
		}
		assert.InDelta(t, 12-0.4, pos.X, 1e-6, "body at z=%.2f", z)
	}
}
