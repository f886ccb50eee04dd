// Package engine drives scenes of moving sprites on a character grid.
//
// A Scene plays the caller's role around the pure motion model: it owns the grid,
// advances each body's clock, resolves positions through physics.Resolve, reacts to
// contact with physics.Rebound and redraws the grid every step.
//
// Anchoring:
//
// Each body keeps an anchor object (origin + vector) and the time elapsed since it.
// Positions are always computed from the anchor, so linear and accelerated motion
// stays exact between contacts. On a Reflect, Stop or Scroll event the body re-anchors
// at the resolved point with the rebounded vector and its clock restarts at zero, so
// each crossing is reported once.
//
// Event Flow:
//  1. Step resolves every body in insertion order
//  2. Each contacted or wrapped axis yields one CollisionEvent
//  3. Events are returned on the Frame; nothing is queued between steps
//  4. Bodies and the grid change only when the whole step succeeds
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/physics"
)

// Axis names the dimension a collision happened on
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// CollisionEvent reports one axis of a body touching or wrapping an edge
type CollisionEvent struct {
	Frame     int
	ObjectID  uuid.UUID
	Name      string
	Axis      Axis
	Collision physics.Collision
	Edge      physics.Edge
	Point     core.Point
}

func (e CollisionEvent) String() string {
	return fmt.Sprintf("%s %s %s/%s at (%d,%d)", e.Name, e.Collision, e.Axis, e.Edge, e.Point.X, e.Point.Y)
}

// eventsFor expands a resolution into per-axis events
func eventsFor(frame int, b *Body, res physics.Resolution) []CollisionEvent {
	var events []CollisionEvent
	for _, ax := range []struct {
		axis Axis
		res  physics.AxisResult
	}{{AxisX, res.X}, {AxisY, res.Y}} {
		if ax.res.Collision == physics.CollisionNone {
			continue
		}
		events = append(events, CollisionEvent{
			Frame:     frame,
			ObjectID:  b.ID,
			Name:      b.Name,
			Axis:      ax.axis,
			Collision: ax.res.Collision,
			Edge:      ax.res.Edge,
			Point:     res.Point,
		})
	}
	return events
}
