package gamemath

import "math"

// ApplyDrag exponentially damps a velocity for one step of dt seconds.
func ApplyDrag(v Vec3, drag, dt float64) Vec3 {
	if drag <= 0 {
		return v
	}
	return v.Scale(math.Exp(-drag * dt))
}

// ClampSpeed limits the magnitude of v to max.
func ClampSpeed(v Vec3, max float64) Vec3 {
	m := v.Magnitude()
	if m > max && m > 0 {
		return v.Scale(max / m)
	}
	return v
}

// SettleSpeed zeroes velocities slower than threshold so drag-only bodies come to rest.
func SettleSpeed(v Vec3, threshold float64) Vec3 {
	if v.SqrMagnitude() < threshold*threshold {
		return Zero
	}
	return v
}
