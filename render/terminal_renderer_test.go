package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestPresentCopiesGrid(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()

	g := mustGrid(t, 3, 2, '.')
	_ = g.SetChar(1, 1, '*')

	Present(screen, g, 2, 1, tcell.StyleDefault)
	screen.Show()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want, _ := g.Char(x, y)
			got, _, _, _ := screen.GetContent(x+2, y+1)
			if got != want {
				t.Errorf("Screen (%d,%d): expected %q, got %q", x+2, y+1, want, got)
			}
		}
	}
}

func TestPresentClipsToScreen(t *testing.T) {
	screen := newSimScreen(t, 2, 1)
	defer screen.Fini()

	g := mustGrid(t, 4, 3, '#')
	// Must not panic when the grid is larger than the screen
	Present(screen, g, 0, 0, tcell.StyleDefault)
	screen.Show()

	if got, _, _, _ := screen.GetContent(1, 0); got != '#' {
		t.Errorf("Expected '#' at (1,0), got %q", got)
	}
}

func TestTerminalRendererFrame(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	defer screen.Fini()

	g := mustGrid(t, 4, 2, '.')
	_ = g.SetChar(0, 0, 'A')

	r := NewTerminalRenderer(screen, tcell.StyleDefault, true)
	r.RenderFrame(g, "tick 1")

	if got, _, _, _ := screen.GetContent(0, 0); got != tcell.RuneULCorner {
		t.Errorf("Expected border corner at (0,0), got %q", got)
	}
	if got, _, _, _ := screen.GetContent(1, 1); got != 'A' {
		t.Errorf("Expected 'A' inside border, got %q", got)
	}
	if got, _, _, _ := screen.GetContent(5, 3); got != tcell.RuneLRCorner {
		t.Errorf("Expected border corner at (5,3), got %q", got)
	}
	if got, _, _, _ := screen.GetContent(0, 4); got != 't' {
		t.Errorf("Expected status text below border, got %q", got)
	}
}
