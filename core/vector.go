package core

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ascii-motion/vmath"
)

// Vector holds an object's initial velocity and acceleration on both axes
// Velocity is in cells per second, acceleration in cells per second squared
// Value type: With* methods return modified copies
type Vector struct {
	VX, VY float64
	AX, AY float64
}

// ZeroVector is a motionless vector
var ZeroVector = Vector{}

// NewVector creates a vector from explicit components
func NewVector(vx, vy, ax, ay float64) Vector {
	return Vector{VX: vx, VY: vy, AX: ax, AY: ay}
}

// VelocityVector creates a constant-velocity vector of the given speed along angle (radians)
func VelocityVector(speed, angle float64) Vector {
	vx, vy := vmath.Decompose(speed, angle)
	return Vector{VX: vx, VY: vy}
}

// AccelerationVector creates a vector starting at rest with the given acceleration along angle (radians)
func AccelerationVector(accel, angle float64) Vector {
	ax, ay := vmath.Decompose(accel, angle)
	return Vector{AX: ax, AY: ay}
}

// VectorFromAngle combines independently angled velocity and acceleration (radians)
func VectorFromAngle(speed, accel, speedAngle, accelAngle float64) Vector {
	vx, vy := vmath.Decompose(speed, speedAngle)
	ax, ay := vmath.Decompose(accel, accelAngle)
	return Vector{VX: vx, VY: vy, AX: ax, AY: ay}
}

// Validate rejects NaN and infinite components
func (v Vector) Validate() error {
	for _, c := range [...]struct {
		name string
		val  float64
	}{{"vx", v.VX}, {"vy", v.VY}, {"ax", v.AX}, {"ay", v.AY}} {
		if math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return fmt.Errorf("%w: vector %s is %v", ErrInvalidConfiguration, c.name, c.val)
		}
	}
	return nil
}

func (v Vector) WithVX(vx float64) Vector {
	v.VX = vx
	return v
}

func (v Vector) WithVY(vy float64) Vector {
	v.VY = vy
	return v
}

func (v Vector) WithAX(ax float64) Vector {
	v.AX = ax
	return v
}

func (v Vector) WithAY(ay float64) Vector {
	v.AY = ay
	return v
}

// IsZero returns true if the vector carries no motion
func (v Vector) IsZero() bool {
	return v == ZeroVector
}

// VelocityAt returns the instantaneous velocity after t seconds
func (v Vector) VelocityAt(t float64) (vx, vy float64) {
	return vmath.VelocityAt(v.VX, v.AX, t), vmath.VelocityAt(v.VY, v.AY, t)
}

// Displace returns the precise position reached from (x, y) after t seconds
func (v Vector) Displace(x, y int, t float64) (px, py float64) {
	return vmath.PositionAtAccel(float64(x), v.VX, v.AX, t),
		vmath.PositionAtAccel(float64(y), v.VY, v.AY, t)
}
