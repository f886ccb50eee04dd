package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lixenwraith/ascii-motion/config"
	"github.com/lixenwraith/ascii-motion/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// annotationTUI marks commands that own the terminal; their console logging is discarded
const annotationTUI = "tui"

// app carries state shared by all subcommands once the root pre-run has loaded it
type app struct {
	cfgFile string
	cfg     *config.Config
}

// NewRootCommand builds a fresh command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ascii-motion",
		Short:         "Animate ASCII sprites on a character grid",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				// Fallback logger so the failure is still reported
				observability.Initialize(config.NewDefaultConfig().Logger, zapcore.Lock(os.Stderr))
				return err
			}
			a.cfg = cfg

			if cmd.Annotations[annotationTUI] != "" {
				observability.InitializeQuiet(cfg.Logger)
			} else {
				observability.Initialize(cfg.Logger, zapcore.Lock(os.Stderr))
			}
			observability.GetLogger().Debug("configuration loaded",
				zap.String("command", cmd.Name()),
				zap.String("config", a.cfgFile),
				zap.Int("objects", len(cfg.Objects)),
			)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "scene file (default is ./scene.toml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newPlayCommand(a),
		newFramesCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and reports failures through the logger
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
