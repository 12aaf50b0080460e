package common

import "math"

// Logical screen size. Rendering scales the window to this resolution.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// WrapAngle normalizes an angle to (-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LerpAngle interpolates between two angles along the shorter arc.
// t outside [0, 1] is clamped so a large blend factor cannot overshoot.
func LerpAngle(a, b, t float64) float64 {
	if t <= 0 {
		return WrapAngle(a)
	}
	if t >= 1 {
		return WrapAngle(b)
	}
	return WrapAngle(a + WrapAngle(b-a)*t)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
