// Package vmath holds the scalar helpers shared by the carousel engine and the view layer
package vmath

import "math"

// Lerp interpolates linearly from a to b, t is clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt bounds x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0 or 1
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Abs returns |x|
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Wrap maps i into [0, n) with wraparound, n must be positive
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Round rounds half away from zero to the nearest int
func Round(x float64) int {
	return int(math.Round(x))
}
