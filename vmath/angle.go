package vmath

import "math"

// FullTurn is one rotation in radians
const FullTurn = 2 * math.Pi

// NormalizeAngle maps an angle in radians to [0, 2π)
func NormalizeAngle(rad float64) float64 {
	return Wrap(rad, FullTurn)
}

// AngledX returns the X component of magnitude m along angle rad
func AngledX(m, rad float64) float64 {
	return m * math.Cos(NormalizeAngle(rad))
}

// AngledY returns the Y component of magnitude m along angle rad
func AngledY(m, rad float64) float64 {
	return m * math.Sin(NormalizeAngle(rad))
}

// Decompose splits magnitude m along angle rad into X and Y components
func Decompose(m, rad float64) (x, y float64) {
	a := NormalizeAngle(rad)
	return m * math.Cos(a), m * math.Sin(a)
}

// Degrees converts degrees to radians for callers holding degree values
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
