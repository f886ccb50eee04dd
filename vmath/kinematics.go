package vmath

import "math"

// Units: positions in cells, velocity in cells per second, acceleration in
// cells per second squared, time in seconds

// VelocityAt returns v = v0 + a*t
func VelocityAt(v0, a, t float64) float64 {
	return v0 + a*t
}

// PositionAt returns s = s0 + v0*t, linear motion without acceleration
func PositionAt(s0, v0, t float64) float64 {
	return s0 + v0*t
}

// PositionAtAccel returns s = s0 + v0*t + 0.5*a*t²
func PositionAtAccel(s0, v0, a, t float64) float64 {
	return s0 + v0*t + 0.5*a*t*t
}

// AverageVelocity returns displacement over elapsed time
// Returns 0 when no time has elapsed
func AverageVelocity(pos, pos0, t, t0 float64) float64 {
	dt := t - t0
	if dt == 0 {
		return 0
	}
	return (pos - pos0) / dt
}

// FrameCount returns the number of whole frames of length step in [from, to)
// Non-positive step yields 0
func FrameCount(from, to int, step float64) int {
	if step <= 0 || to <= from {
		return 0
	}
	return int(math.Floor(float64(to-from) / step))
}

// Wrap maps p into [0, length), congruent to p mod length
// length must be positive
func Wrap(p, length float64) float64 {
	w := math.Mod(p, length)
	if w < 0 {
		w += length
	}
	// -tiny + length rounds up to length in float64
	if w >= length {
		w = 0
	}
	return w
}

// Clamp restricts v to [lo, hi]; hi < lo collapses to lo
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampFloat restricts v to [lo, hi] before any integer conversion
// NaN collapses to lo
func ClampFloat(v float64, lo, hi int) float64 {
	flo, fhi := float64(lo), float64(hi)
	if v > fhi {
		return fhi
	}
	if v >= flo {
		return v
	}
	return flo
}

// FloorInt floors a float coordinate to a grid cell
func FloorInt(f float64) int {
	return int(math.Floor(f))
}
