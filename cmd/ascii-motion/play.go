package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-motion/audio"
	"github.com/lixenwraith/ascii-motion/config"
	"github.com/lixenwraith/ascii-motion/engine"
	"github.com/lixenwraith/ascii-motion/observability"
	"github.com/lixenwraith/ascii-motion/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newPlayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "play",
		Short:       "Animate the scene in the terminal (q, Esc or Ctrl-C to quit)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()
			// Panic Recovery: ensure terminal is reset even if a frame crashes
			defer func() {
				if r := recover(); r != nil {
					handleCrash(screen, r)
				}
			}()

			player, err := audio.NewPlayer(a.cfg.Audio)
			if err != nil {
				logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
			}
			defer player.Close()

			return play(cmd.Context(), screen, a.cfg, player, logger)
		},
	}
}

// play renders the scene on screen until a quit key, context cancellation or a step error
func play(ctx context.Context, screen tcell.Screen, cfg *config.Config, player audio.Player, logger *zap.Logger) error {
	scene, err := engine.NewSceneFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	renderer := render.NewTerminalRenderer(screen, tcell.StyleDefault, cfg.Animation.Border)

	first, err := scene.Step(0)
	if err != nil {
		return err
	}
	renderer.RenderFrame(scene.Grid(), first.Status())

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	// Input: PollEvent blocks, so the frame loop posts an interrupt on exit to release it
	g.Go(guarded(screen, func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventInterrupt:
				if runCtx.Err() != nil {
					return nil
				}
			case *tcell.EventKey:
				if isQuitKey(ev) {
					logger.Info("quit requested")
					cancel()
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}))

	// Frames
	g.Go(guarded(screen, func() error {
		defer func() { _ = screen.PostEvent(tcell.NewEventInterrupt(nil)) }()
		defer cancel()

		ticker := time.NewTicker(cfg.Animation.Interval)
		defer ticker.Stop()

		dt := cfg.Animation.Tick.Seconds()
		return scene.Run(runCtx, ticker.C, dt, func(f engine.Frame) error {
			for _, ev := range f.Events {
				if cue, ok := audio.CueFor(ev.Collision); ok {
					player.Play(cue)
				}
			}
			renderer.RenderFrame(scene.Grid(), f.Status())
			return nil
		})
	}))

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("playback finished", zap.Int("objects", len(scene.Bodies())))
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
