package gamemath

import "math"

// Vec3 is a point or direction in world space. Y is up; the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) SqrMagnitude() float64 { return v.Dot(v) }

func (v Vec3) Magnitude() float64 { return math.Sqrt(v.SqrMagnitude()) }

// Normalized returns the unit vector in v's direction, or Zero for very short vectors.
func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	if m < 1e-5 {
		return Zero
	}
	return v.Scale(1 / m)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

func Distance(a, b Vec3) float64 { return b.Sub(a).Magnitude() }

// FlatDistance is the distance between a and b on the ground plane.
func FlatDistance(a, b Vec3) float64 { return b.Sub(a).Flat().Magnitude() }

// Angle returns the unsigned angle between a and b in degrees.
func Angle(a, b Vec3) float64 {
	denom := math.Sqrt(a.SqrMagnitude() * b.SqrMagnitude())
	if denom < 1e-15 {
		return 0
	}
	cos := ClampFloat(a.Dot(b)/denom, -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// Lerp interpolates between a and b, t clamped to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	t = ClampFloat(t, 0, 1)
	return a.Add(b.Sub(a).Scale(t))
}

// MoveTowards steps from current toward target by at most maxDelta.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	d := target.Sub(current)
	dist := d.Magnitude()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}

// Forward returns the horizontal unit vector a yaw (radians, clockwise from +Z)
// is facing.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// YawOf returns the yaw that faces along dir on the ground plane.
func YawOf(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// LerpAngle interpolates between two angles in radians along the shortest arc,
// t clamped to [0, 1]. For yaw-only rotations this matches a quaternion slerp.
func LerpAngle(from, to, t float64) float64 {
	t = ClampFloat(t, 0, 1)
	delta := math.Remainder(to-from, 2*math.Pi)
	return WrapAngle(from + delta*t)
}

// MoveTowardsAngle turns from toward to by at most maxDelta radians along the
// shortest arc.
func MoveTowardsAngle(from, to, maxDelta float64) float64 {
	delta := math.Remainder(to-from, 2*math.Pi)
	if math.Abs(delta) <= maxDelta {
		return WrapAngle(to)
	}
	return WrapAngle(from + math.Copysign(maxDelta, delta))
}

// WrapAngle maps an angle into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
