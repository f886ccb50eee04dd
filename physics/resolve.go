package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/vmath"
)

// Collision reports what the policy did on one axis
type Collision uint8

const (
	CollisionNone Collision = iota
	// CollisionReflect: object pinned at the edge, motion should reverse
	CollisionReflect
	// CollisionStop: object pinned at the edge, motion should halt
	CollisionStop
	// CollisionWrap: coordinate wrapped to the opposite side
	CollisionWrap
)

func (c Collision) String() string {
	switch c {
	case CollisionReflect:
		return "reflect"
	case CollisionStop:
		return "stop"
	case CollisionWrap:
		return "wrap"
	default:
		return "none"
	}
}

// Edge identifies which side of an axis was hit
type Edge uint8

const (
	EdgeNone Edge = iota
	// EdgeLow is the left or top side
	EdgeLow
	// EdgeHigh is the right or bottom side
	EdgeHigh
)

func (e Edge) String() string {
	switch e {
	case EdgeLow:
		return "low"
	case EdgeHigh:
		return "high"
	default:
		return "none"
	}
}

// AxisResult carries the unresolved motion and the policy outcome for one axis
type AxisResult struct {
	Raw       float64 // Precise position before policy and flooring
	Velocity  float64 // Instantaneous velocity at the resolved time
	Collision Collision
	Edge      Edge
}

// Multiplier returns the direction sign hint: -1 reflect, 0 stop, 1 otherwise
func (a AxisResult) Multiplier() float64 {
	switch a.Collision {
	case CollisionReflect:
		return -1
	case CollisionStop:
		return 0
	default:
		return 1
	}
}

// Resolution is the integer grid position for one tick plus per-axis outcomes
type Resolution struct {
	Point core.Point
	X, Y  AxisResult
}

// Collided returns true if either axis reflected or stopped
func (r Resolution) Collided() bool {
	return isContact(r.X.Collision) || isContact(r.Y.Collision)
}

// Wrapped returns true if either axis scrolled
func (r Resolution) Wrapped() bool {
	return r.X.Collision == CollisionWrap || r.Y.Collision == CollisionWrap
}

// Multiplier returns the direction sign hints for both axes
func (r Resolution) Multiplier() (mx, my float64) {
	return r.X.Multiplier(), r.Y.Multiplier()
}

func isContact(c Collision) bool {
	return c == CollisionReflect || c == CollisionStop
}

// Resolve computes the object's grid position t seconds after its anchor
// Raw motion follows s = s0 + v0*t + 0.5*a*t², then the bounds policy applies per axis
// Non-scroll results always keep the full extent inside [padding, dim-padding-size]
// Reflect and Stop count an exact touch of an edge only while moving into it, so a body
// coming to rest on the edge is not a collision, unlike a plain meets-or-exceeds rule
func Resolve(obj core.Object, b core.Bounds, t float64) (Resolution, error) {
	if err := b.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := obj.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := b.Fits(obj.Width, obj.Height); err != nil {
		return Resolution{}, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return Resolution{}, fmt.Errorf("%w: elapsed time %v is not finite", core.ErrInvalidConfiguration, t)
	}

	if t == 0 {
		return Resolution{
			Point: obj.Origin(),
			X:     AxisResult{Raw: float64(obj.X), Velocity: obj.Vector.VX},
			Y:     AxisResult{Raw: float64(obj.Y), Velocity: obj.Vector.VY},
		}, nil
	}

	v := obj.Vector
	x, rx, err := resolveAxis(axis{
		origin: obj.X, size: obj.Width, length: b.Width,
		padLow: b.Padding.Left, padHigh: b.Padding.Right,
		v0: v.VX, a: v.AX,
	}, b.Policy, t)
	if err != nil {
		return Resolution{}, fmt.Errorf("x axis: %w", err)
	}
	y, ry, err := resolveAxis(axis{
		origin: obj.Y, size: obj.Height, length: b.Height,
		padLow: b.Padding.Top, padHigh: b.Padding.Bottom,
		v0: v.VY, a: v.AY,
	}, b.Policy, t)
	if err != nil {
		return Resolution{}, fmt.Errorf("y axis: %w", err)
	}

	return Resolution{Point: core.Point{X: x, Y: y}, X: rx, Y: ry}, nil
}

// axis is one dimension of an object moving inside the grid
type axis struct {
	origin, size, length int
	padLow, padHigh      int
	v0, a                float64
}

func resolveAxis(ax axis, policy core.CollisionPolicy, t float64) (int, AxisResult, error) {
	raw := vmath.PositionAtAccel(float64(ax.origin), ax.v0, ax.a, t)
	res := AxisResult{Raw: raw, Velocity: vmath.VelocityAt(ax.v0, ax.a, t)}

	lo := ax.padLow
	hi := ax.length - ax.padHigh - ax.size

	switch policy {
	case core.PolicyScroll:
		if math.IsInf(raw, 0) || math.IsNaN(raw) {
			return 0, res, fmt.Errorf("%w: position %v cannot wrap", core.ErrInvalidConfiguration, raw)
		}
		length := float64(ax.length)
		if raw < 0 || raw >= length {
			res.Collision = CollisionWrap
			res.Edge = EdgeLow
			if raw >= length {
				res.Edge = EdgeHigh
			}
		}
		return vmath.FloorInt(vmath.Wrap(raw, length)), res, nil

	case core.PolicyReflect, core.PolicyStop:
		if edge := hitEdge(raw, res.Velocity, lo, hi); edge != EdgeNone {
			res.Edge = edge
			res.Collision = CollisionStop
			if policy == core.PolicyReflect {
				res.Collision = CollisionReflect
			}
			if edge == EdgeLow {
				return lo, res, nil
			}
			return hi, res, nil
		}
	}

	return vmath.Clamp(vmath.FloorInt(vmath.ClampFloat(raw, lo, hi)), lo, hi), res, nil
}

// hitEdge detects contact with the usable range [lo, hi] of an origin coordinate
// Passing an edge always counts; resting exactly on it counts only while moving into it
func hitEdge(raw, vel float64, lo, hi int) Edge {
	flo, fhi := float64(lo), float64(hi)
	switch {
	case raw > fhi || (raw == fhi && vel > 0):
		return EdgeHigh
	case raw < flo || (raw == flo && vel < 0):
		return EdgeLow
	default:
		return EdgeNone
	}
}
