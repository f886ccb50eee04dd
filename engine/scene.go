package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lixenwraith/ascii-motion/config"
	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/parameter"
	"github.com/lixenwraith/ascii-motion/physics"
	"github.com/lixenwraith/ascii-motion/render"
	"github.com/lixenwraith/ascii-motion/vmath"
	"go.uber.org/zap"
)

// Body is one moving object tracked by a scene
type Body struct {
	ID   uuid.UUID
	Name string

	// Anchor holds the origin and vector motion is computed from
	Anchor core.Object

	// Elapsed is seconds since the anchor was set
	Elapsed float64

	// Position is the most recently resolved grid point
	Position core.Point
}

// Frame is the result of one scene step
type Frame struct {
	Index   int
	Time    float64 // Total simulated seconds
	Text    string
	Events  []CollisionEvent
	Objects int
}

// Status returns a one-line summary for display under the grid
func (f Frame) Status() string {
	return fmt.Sprintf("frame %d  t=%.2fs  objects %d  events %d", f.Index, f.Time, f.Objects, len(f.Events))
}

// Scene owns a grid and the bodies drawn on it
// Not safe for concurrent use
type Scene struct {
	bounds core.Bounds
	grid   *render.CharGrid
	// scratch receives the next frame until the step succeeds
	scratch *render.CharGrid
	bodies  []*Body
	frame   int
	time    float64
	logger  *zap.Logger
}

// NewScene creates an empty scene; a nil logger is replaced by a no-op logger
func NewScene(bounds core.Bounds, fill rune, logger *zap.Logger) (*Scene, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	grid, err := render.NewCharGrid(bounds.Width, bounds.Height, fill)
	if err != nil {
		return nil, err
	}
	scratch, err := render.NewCharGrid(bounds.Width, bounds.Height, fill)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scene{
		bounds:  bounds,
		grid:    grid,
		scratch: scratch,
		logger:  logger.Named("scene"),
	}, nil
}

// NewSceneFromConfig builds a scene and its objects from a validated config
// A config without objects gets the demo objects
func NewSceneFromConfig(cfg *config.Config, logger *zap.Logger) (*Scene, error) {
	bounds, err := cfg.Grid.Bounds()
	if err != nil {
		return nil, err
	}
	fill, err := cfg.Grid.FillRune()
	if err != nil {
		return nil, err
	}
	s, err := NewScene(bounds, fill, logger)
	if err != nil {
		return nil, err
	}

	objects := cfg.Objects
	if len(objects) == 0 {
		objects = config.DefaultObjects()
	}
	for i, oc := range objects {
		obj, err := oc.Build(fill)
		if err != nil {
			return nil, fmt.Errorf("objects[%d] %q: %w", i, oc.Name, err)
		}
		if _, err := s.Add(oc.Name, obj); err != nil {
			return nil, fmt.Errorf("objects[%d] %q: %w", i, oc.Name, err)
		}
	}
	return s, nil
}

// Add places an object in the scene and returns its ID
// The object must fit the bounds and start on the grid; under Scroll only its origin must be on the grid
func (s *Scene) Add(name string, obj core.Object) (uuid.UUID, error) {
	if err := obj.Validate(); err != nil {
		return uuid.Nil, err
	}
	if err := s.bounds.Fits(obj.Width, obj.Height); err != nil {
		return uuid.Nil, err
	}
	onGrid := obj.Rect().Within(s.bounds.Width, s.bounds.Height)
	if s.bounds.Policy == core.PolicyScroll {
		onGrid = core.Area{Width: s.bounds.Width, Height: s.bounds.Height}.Contains(obj.X, obj.Y)
	}
	if !onGrid {
		return uuid.Nil, fmt.Errorf("%w: %q at (%d,%d) starts outside the %dx%d grid",
			core.ErrOutOfBounds, name, obj.X, obj.Y, s.bounds.Width, s.bounds.Height)
	}

	b := &Body{
		ID:       uuid.New(),
		Name:     name,
		Anchor:   obj,
		Position: obj.Origin(),
	}
	s.bodies = append(s.bodies, b)
	s.logger.Debug("object added",
		zap.String("id", b.ID.String()),
		zap.String("name", name),
		zap.Int("x", obj.X), zap.Int("y", obj.Y),
		zap.Int("width", obj.Width), zap.Int("height", obj.Height),
	)
	return b.ID, nil
}

// Bounds returns the scene bounds
func (s *Scene) Bounds() core.Bounds {
	return s.bounds
}

// Grid returns the scene's grid as drawn by the last step
// The returned grid is reused two steps later; copy it to keep a frame
func (s *Scene) Grid() *render.CharGrid {
	return s.grid
}

// Bodies returns a snapshot of all bodies
func (s *Scene) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = *b
	}
	return out
}

// Step advances simulated time by dt seconds, redraws the grid and returns the frame
// A failed step leaves the scene as it was
func (s *Scene) Step(dt float64) (Frame, error) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return Frame{}, fmt.Errorf("%w: step %v must be a finite non-negative duration", core.ErrInvalidConfiguration, dt)
	}

	frame := s.frame + 1
	s.scratch.Clear()

	next := make([]Body, len(s.bodies))
	var events []CollisionEvent
	for i, cur := range s.bodies {
		b := *cur
		b.Elapsed += dt
		anchor, res, err := physics.Advance(b.Anchor, s.bounds, b.Elapsed)
		if err != nil {
			return Frame{}, fmt.Errorf("resolve %q: %w", b.Name, err)
		}

		evs := eventsFor(frame, &b, res)
		if len(evs) > 0 {
			avgX, avgY := segmentVelocity(b.Anchor, res.X.Raw, res.Y.Raw, b.Elapsed)
			for _, ev := range evs {
				s.logger.Debug("collision",
					zap.Int("frame", ev.Frame),
					zap.String("name", ev.Name),
					zap.String("axis", string(ev.Axis)),
					zap.Stringer("collision", ev.Collision),
					zap.Stringer("edge", ev.Edge),
					zap.Float64("avg_vx", avgX),
					zap.Float64("avg_vy", avgY),
				)
			}
		}
		events = append(events, evs...)

		if res.Collided() || res.Wrapped() {
			b.Anchor = anchor
			b.Elapsed = 0
		}
		b.Position = res.Point

		if err := s.draw(s.scratch, &b); err != nil {
			return Frame{}, fmt.Errorf("draw %q: %w", b.Name, err)
		}
		next[i] = b
	}

	for i, b := range next {
		*s.bodies[i] = b
	}
	s.grid, s.scratch = s.scratch, s.grid
	s.frame = frame
	s.time += dt

	return Frame{
		Index:   s.frame,
		Time:    s.time,
		Text:    s.grid.Render(parameter.LineSeparator),
		Events:  events,
		Objects: len(s.bodies),
	}, nil
}

// segmentVelocity returns the average velocity from the anchor to the unclamped position
func segmentVelocity(anchor core.Object, rawX, rawY, elapsed float64) (vx, vy float64) {
	return vmath.AverageVelocity(rawX, float64(anchor.X), elapsed, 0),
		vmath.AverageVelocity(rawY, float64(anchor.Y), elapsed, 0)
}

func (s *Scene) draw(g *render.CharGrid, b *Body) error {
	if s.bounds.Policy == core.PolicyScroll {
		return g.DrawBlockWrapped(b.Anchor.Chars, b.Position.X, b.Position.Y)
	}
	return g.DrawObject(b.Anchor, b.Position)
}
