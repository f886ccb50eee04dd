package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-motion/audio"
	"github.com/lixenwraith/ascii-motion/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type countingPlayer struct {
	plays  atomic.Int32
	closed atomic.Bool
}

func (p *countingPlayer) Play(audio.Cue) bool {
	p.plays.Add(1)
	return true
}

func (p *countingPlayer) Close() { p.closed.Store(true) }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(30, 10)
	return screen
}

func smallConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Grid.Width = 5
	cfg.Grid.Height = 3
	cfg.Grid.Fill = "."
	cfg.Objects = []config.ObjectConfig{{Name: "o", X: 1, Y: 1, Sprite: "o", VX: 40}}
	return cfg
}

func TestPlay_QuitKeyRendersInitialFrame(t *testing.T) {
	defer goleak.VerifyNone(t)

	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := smallConfig()
	cfg.Animation.Interval = time.Hour
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	err := play(context.Background(), screen, cfg, audio.Silent{}, zap.NewNop())
	require.NoError(t, err)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, r)
	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, 'o', r, "object drawn inside the border at its origin")
	r, _, _, _ = screen.GetContent(1, 1)
	assert.Equal(t, '.', r)
	r, _, _, _ = screen.GetContent(0, 5)
	assert.Equal(t, 'f', r, "status line below the border")
}

func TestPlay_EscapeQuits(t *testing.T) {
	defer goleak.VerifyNone(t)

	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := smallConfig()
	cfg.Animation.Interval = time.Hour
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- play(context.Background(), screen, cfg, audio.Silent{}, zap.NewNop()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not exit on Escape")
	}
}

func TestPlay_CollisionsTriggerCues(t *testing.T) {
	defer goleak.VerifyNone(t)

	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := smallConfig()
	cfg.Animation.Interval = time.Millisecond
	cfg.Animation.Tick = 100 * time.Millisecond
	player := &countingPlayer{}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := play(ctx, screen, cfg, player, zap.NewNop())
	require.NoError(t, err)
	assert.Positive(t, player.plays.Load(), "bouncing at 40 cells/s in a 5-wide grid must hit an edge")
}

func TestPlay_InvalidSceneFails(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := smallConfig()
	cfg.Objects = []config.ObjectConfig{{Name: "wide", Sprite: "abcdefg"}}

	err := play(context.Background(), screen, cfg, audio.Silent{}, zap.NewNop())
	assert.Error(t, err)
}
