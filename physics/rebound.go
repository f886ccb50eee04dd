package physics

import (
	"math"

	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/vmath"
)

// Rebound returns the vector an object should carry when re-anchored at r.Point
// Velocities become instantaneous values at t; a reflected axis points away from the
// edge it hit, a stopped axis loses velocity and acceleration
func Rebound(v core.Vector, r Resolution, t float64) core.Vector {
	v.VX, v.AX = reboundAxis(v.VX, v.AX, r.X, t)
	v.VY, v.AY = reboundAxis(v.VY, v.AY, r.Y, t)
	return v
}

func reboundAxis(v0, a float64, res AxisResult, t float64) (float64, float64) {
	vel := vmath.VelocityAt(v0, a, t)
	switch res.Collision {
	case CollisionReflect:
		if res.Edge == EdgeHigh {
			return -math.Abs(vel), a
		}
		return math.Abs(vel), a
	case CollisionStop:
		return 0, 0
	default:
		return vel, a
	}
}

// Advance resolves obj after t seconds and returns it re-anchored at the resolved point
// with its rebounded vector, ready for a fresh clock starting at zero
func Advance(obj core.Object, b core.Bounds, t float64) (core.Object, Resolution, error) {
	res, err := Resolve(obj, b, t)
	if err != nil {
		return obj, res, err
	}
	next := obj.At(res.Point)
	next.Vector = Rebound(obj.Vector, res, t)
	return next, res, nil
}
