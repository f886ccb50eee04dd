package engine

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends Run without error when returned by a frame sink
var ErrStop = errors.New("stop")

// Run steps the scene by dt on every tick and hands each frame to sink
// Returns nil when ctx is done or sink returns ErrStop; any other error ends the run
func (s *Scene) Run(ctx context.Context, ticks <-chan time.Time, dt float64, sink func(Frame) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			frame, err := s.Step(dt)
			if err != nil {
				return err
			}
			if err := sink(frame); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}
}
