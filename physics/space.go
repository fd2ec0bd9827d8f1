package physics

import (
	"math"

	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv cell math assumes pixel units, so objects live in the space at
// world units times PixelsPerUnit. Everything outside this package speaks
// world units.

// Scale returns resolv pixels per world unit.
func Scale() float64 {
	if s := config.Arena.PixelsPerUnit; s > 0 {
		return s
	}
	return 1
}

// NewSpace returns a resolv space covering width x depth world units, with
// square cells cellSize world units wide.
func NewSpace(width, depth, cellSize float64) *resolv.Space {
	s := Scale()
	cell := max(1, int(math.Round(cellSize*s)))
	return resolv.NewSpace(int(math.Ceil(width*s)), int(math.Ceil(depth*s)), cell, cell)
}

// NewObject returns a rectangle with its top-left corner at (x, z), sized
// width x depth world units.
func NewObject(x, z, width, depth float64, tags ...string) *resolv.Object {
	s := Scale()
	obj := resolv.NewObject(x*s, z*s, width*s, depth*s, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width*s, depth*s))
	return obj
}

// NewObjectAt returns a width x depth rectangle centred on pos.
func NewObjectAt(pos gamemath.Vec3, width, depth float64, tags ...string) *resolv.Object {
	return NewObject(pos.X-width/2, pos.Z-depth/2, width, depth, tags...)
}

// Bounds returns the top-left corner and size of obj in world units.
func Bounds(obj *resolv.Object) (x, z, width, depth float64) {
	s := Scale()
	return obj.X / s, obj.Y / s, obj.W / s, obj.H / s
}

// Center returns the centre of obj on the ground plane in world units.
func Center(obj *resolv.Object) gamemath.Vec3 {
	x, z, w, d := Bounds(obj)
	return gamemath.Vec3{X: x + w/2, Z: z + d/2}
}

// MoveTo centres obj on pos and refreshes its cells when it is in a space.
func MoveTo(obj *resolv.Object, pos gamemath.Vec3) {
	s := Scale()
	obj.X = pos.X*s - obj.W/2
	obj.Y = pos.Z*s - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}
