package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer copies grids onto a tcell screen inside an optional border
type TerminalRenderer struct {
	screen      tcell.Screen
	style       tcell.Style
	borderStyle tcell.Style
	border      bool
}

// NewTerminalRenderer creates a renderer drawing with style, framed when border is set
func NewTerminalRenderer(screen tcell.Screen, style tcell.Style, border bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		style:       style,
		borderStyle: style.Dim(true),
		border:      border,
	}
}

// RenderFrame clears the screen, draws the grid and a status line below it, then shows
func (r *TerminalRenderer) RenderFrame(g *CharGrid, status string) {
	r.screen.Clear()

	ox, oy := 0, 0
	if r.border {
		ox, oy = 1, 1
		r.drawBorder(g.Width()+2, g.Height()+2)
	}
	Present(r.screen, g, ox, oy, r.style)

	statusY := oy + g.Height()
	if r.border {
		statusY++
	}
	r.drawText(0, statusY, status, r.borderStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, r.borderStyle)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, r.borderStyle)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, r.borderStyle)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, r.borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, r.borderStyle)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, r.borderStyle)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, r.borderStyle)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, r.borderStyle)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	sw, sh := r.screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for i, ch := range []rune(text) {
		if x+i >= sw {
			break
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Present copies the grid onto the screen at offset (ox, oy), clipped to the screen size
// Does not call Show
func Present(screen tcell.Screen, g *CharGrid, ox, oy int, style tcell.Style) {
	sw, sh := screen.Size()
	for y, row := range g.rows {
		sy := oy + y
		if sy < 0 || sy >= sh {
			continue
		}
		for x, ch := range row {
			sx := ox + x
			if sx < 0 || sx >= sw {
				continue
			}
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}
}
