package common

import "math"

// Clamp constrains a value to the inclusive range [min, max].
//
// Parameters:
//   - value: the value to constrain
//   - min: lower bound of the range
//   - max: upper bound of the range
//
// Returns:
//   - float32: value limited to [min, max]
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; callers clamp when they need endpoint safety.
//
// Parameters:
//   - a: start value (returned at t=0)
//   - b: end value (returned at t=1)
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// WrapAngleDeg normalizes a signed angle difference into (-180, 180] degrees.
// Used to pick the shorter of the two arcs around the circle.
//
// Parameters:
//   - deg: angle in degrees (unbounded)
//
// Returns:
//   - float32: equivalent angle in (-180, 180]
func WrapAngleDeg(deg float32) float32 {
	wrapped := float32(math.Mod(float64(deg), 360))
	if wrapped > 180 {
		wrapped -= 360
	}
	if wrapped <= -180 {
		wrapped += 360
	}
	return wrapped
}

// LerpAngleDeg interpolates between two angles in degrees along the shortest arc.
// For from=350 and to=10 the result moves through 360/0, never backward through 180.
//
// Parameters:
//   - from: start angle in degrees (unbounded)
//   - to: end angle in degrees (unbounded)
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated angle, expressed relative to from
func LerpAngleDeg(from, to, t float32) float32 {
	return from + WrapAngleDeg(to-from)*t
}

// SmoothStep applies the cubic Hermite easing curve 3t²−2t³.
// Input is clamped to [0, 1]; the curve has zero slope at both ends and is
// symmetric about t=0.5 (SmoothStep(0.5) == 0.5 exactly).
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float32: eased progress in [0, 1]
func SmoothStep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// ApproxEqual reports whether two values are within epsilon of each other.
//
// Parameters:
//   - a: first value
//   - b: second value
//   - epsilon: maximum allowed absolute difference
//
// Returns:
//   - bool: true if |a-b| <= epsilon
func ApproxEqual(a, b, epsilon float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
