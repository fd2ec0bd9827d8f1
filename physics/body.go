package physics

import (
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/solarlune/resolv"
)

// Body is a rigidbody backed by a resolv object. While kinematic it is moved
// by its owner; while dynamic it integrates its own velocity, damped by drag
// and stopped by solid objects.
type Body struct {
	Object   *resolv.Object
	Mass     float64
	Velocity gamemath.Vec3

	Drag          float64
	MaxSpeed      float64
	RestThreshold float64

	kinematic bool
}

// NewBody returns a kinematic body for obj.
func NewBody(obj *resolv.Object, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Object:        obj,
		Mass:          mass,
		Drag:          config.Physics.Drag,
		MaxSpeed:      config.Physics.MaxSpeed,
		RestThreshold: config.Physics.RestThreshold,
		kinematic:     true,
	}
}

// AddImpulse changes velocity by impulse/mass on the ground plane. Kinematic
// bodies ignore impulses.
func (b *Body) AddImpulse(impulse gamemath.Vec3) {
	if b.kinematic {
		return
	}
	b.Velocity = gamemath.ClampSpeed(b.Velocity.Add(impulse.Flat().Scale(1/b.Mass)), b.MaxSpeed)
}

// SetKinematic switches modes. Becoming kinematic discards any velocity.
func (b *Body) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
	if kinematic {
		b.Velocity = gamemath.Zero
	}
}

func (b *Body) Kinematic() bool {
	return b.kinematic
}

// Advance integrates one step for a dynamic body centred at from and returns
// the new centre. Kinematic bodies do not move.
func (b *Body) Advance(from gamemath.Vec3, dt float64) gamemath.Vec3 {
	if b.kinematic || dt <= 0 {
		return from
	}
	b.Velocity = gamemath.SettleSpeed(gamemath.ApplyDrag(b.Velocity, b.Drag, dt), b.RestThreshold)
	if b.Velocity == gamemath.Zero {
		return from
	}
	if b.Object == nil {
		return from.Add(b.Velocity.Scale(dt))
	}

	_, _, w, h := Bounds(b.Object)
	x, z := from.X-w/2, from.Z-h/2

	// Resolve X then Z so a body slides along walls.
	dx := b.Velocity.X * dt
	if nx, blocked := b.move(x, z, dx, 0); blocked {
		x = nx
		b.Velocity.X = 0
	} else {
		x += dx
	}

	dz := b.Velocity.Z * dt
	if nz, blocked := b.move(x, z, 0, dz); blocked {
		z = nz
		b.Velocity.Z = 0
	} else {
		z += dz
	}

	next := gamemath.Vec3{X: x + w/2, Y: from.Y, Z: z + h/2}
	MoveTo(b.Object, next)
	return next
}

// move checks a single-axis step from the world corner (x, z) and, when a
// solid object is in the way, returns the coordinate on that axis that leaves
// the body touching it.
func (b *Body) move(x, z, dx, dz float64) (float64, bool) {
	if b.Object.Space == nil || (dx == 0 && dz == 0) {
		return 0, false
	}
	s := Scale()
	b.Object.X, b.Object.Y = x*s, z*s
	check := b.Object.Check(dx*s, dz*s, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}

	_, _, w, h := Bounds(b.Object)
	blocked := false
	result := x + dx
	if dz != 0 {
		result = z + dz
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(x+dx, z+dz, w, h, solid) {
			continue
		}
		blocked = true
		sx, sz, sw, sd := Bounds(solid)
		switch {
		case dx > 0:
			result = min(result, sx-w)
		case dx < 0:
			result = max(result, sx+sw)
		case dz > 0:
			result = min(result, sz-h)
		case dz < 0:
			result = max(result, sz+sd)
		}
	}
	return result, blocked
}
