package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/engine"
	"github.com/lixenwraith/ascii-motion/observability"
	"github.com/lixenwraith/ascii-motion/vmath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFramesCommand(a *app) *cobra.Command {
	var (
		count    int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print rendered frames to stdout, separated by a blank line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cmd.Flags().Changed("duration"):
				if duration < 0 {
					return fmt.Errorf("%w: duration %v must not be negative", core.ErrInvalidConfiguration, duration)
				}
				count = framesFor(duration, a.cfg.Animation.Tick)
			case !cmd.Flags().Changed("count"):
				count = a.cfg.Animation.Frames
			}
			if count < 0 {
				return fmt.Errorf("%w: frame count %d must not be negative", core.ErrInvalidConfiguration, count)
			}

			logger := observability.GetLogger()
			scene, err := engine.NewSceneFromConfig(a.cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("rendering frames", zap.Int("count", count), zap.Duration("tick", a.cfg.Animation.Tick))
			return writeFrames(cmd.OutOrStdout(), scene, count, a.cfg.Animation.Tick.Seconds())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of frames (default from config)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "simulated time to cover instead of a frame count")
	cmd.MarkFlagsMutuallyExclusive("count", "duration")
	return cmd
}

// framesFor returns the frames needed to show d of simulated time: the initial layout plus one per whole tick
func framesFor(d, tick time.Duration) int {
	return vmath.FrameCount(0, int(d/time.Millisecond), float64(tick)/float64(time.Millisecond)) + 1
}

// writeFrames prints count frames; the first shows the initial layout, each later one is dt further
func writeFrames(w io.Writer, scene *engine.Scene, count int, dt float64) error {
	for i := 0; i < count; i++ {
		step := dt
		if i == 0 {
			step = 0
		}
		f, err := scene.Step(step)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, f.Text); err != nil {
			return err
		}
	}
	return nil
}
