package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ascii-motion/core"
)

// CharGrid is a fixed-size rectangular character canvas
// All rows are exactly width runes; the grid is never resized
// Draw operations validate their full extent before writing any cell
type CharGrid struct {
	width  int
	height int
	fill   rune
	rows   [][]rune
}

// NewCharGrid allocates a width×height grid filled with fill
func NewCharGrid(width, height int, fill rune) (*CharGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d must be positive", core.ErrInvalidConfiguration, width, height)
	}

	rows := make([][]rune, height)
	for y := range rows {
		rows[y] = make([]rune, width)
	}
	g := &CharGrid{
		width:  width,
		height: height,
		fill:   fill,
		rows:   rows,
	}
	g.Clear()
	return g, nil
}

// Width returns the grid width
func (g *CharGrid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *CharGrid) Height() int {
	return g.height
}

// Fill returns the rune empty cells hold
func (g *CharGrid) Fill() rune {
	return g.fill
}

// Clear resets every cell to the fill rune
func (g *CharGrid) Clear() {
	for y := range g.rows {
		row := g.rows[y]
		row[0] = g.fill
		// Exponential copy
		for filled := 1; filled < len(row); filled *= 2 {
			copy(row[filled:], row[:filled])
		}
	}
}

// inBounds returns true if (x, y) is a grid cell
func (g *CharGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// checkArea rejects a write whose origin or extent leaves the grid
func (g *CharGrid) checkArea(a core.Area) error {
	if !g.inBounds(a.X, a.Y) || !a.Within(g.width, g.height) {
		return fmt.Errorf("%w: %dx%d at (%d,%d) exceeds %dx%d grid",
			core.ErrOutOfBounds, a.Width, a.Height, a.X, a.Y, g.width, g.height)
	}
	return nil
}

// Char returns the rune at (x, y)
func (g *CharGrid) Char(x, y int) (rune, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return g.rows[y][x], true
}

// SetChar writes a single cell
func (g *CharGrid) SetChar(x, y int, r rune) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", core.ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.rows[y][x] = r
	return nil
}

// DrawText writes text split on sep with its first line starting at (x, y)
// The bounding box is the longest line by the line count; short lines leave the remainder untouched
func (g *CharGrid) DrawText(text string, sep rune, x, y int) error {
	lines := splitRunes(text, sep)
	area := core.Area{X: x, Y: y, Width: BlockWidth(lines), Height: len(lines)}
	if err := g.checkArea(area); err != nil {
		return err
	}

	for dy, line := range lines {
		copy(g.rows[y+dy][x:], line)
	}
	return nil
}

// DrawBlock blits a rectangular block with its top-left at (x, y)
// Ragged blocks are rejected; normalize them with NormalizeBlock first
func (g *CharGrid) DrawBlock(block [][]rune, x, y int) error {
	width, err := rectWidth(block)
	if err != nil {
		return err
	}
	if err := g.checkArea(core.Area{X: x, Y: y, Width: width, Height: len(block)}); err != nil {
		return err
	}

	for dy, row := range block {
		copy(g.rows[y+dy][x:], row)
	}
	return nil
}

// DrawBlockWrapped blits a rectangular block toroidally, wrapping cells past an edge to the opposite side
// The origin must lie in the grid and the block must not exceed the grid size
func (g *CharGrid) DrawBlockWrapped(block [][]rune, x, y int) error {
	width, err := rectWidth(block)
	if err != nil {
		return err
	}
	if !g.inBounds(x, y) || width > g.width || len(block) > g.height {
		return fmt.Errorf("%w: wrapped %dx%d at (%d,%d) exceeds %dx%d grid",
			core.ErrOutOfBounds, width, len(block), x, y, g.width, g.height)
	}

	for dy, row := range block {
		gy := (y + dy) % g.height
		for dx, r := range row {
			g.rows[gy][(x+dx)%g.width] = r
		}
	}
	return nil
}

// DrawObject blits an object's sprite at p
func (g *CharGrid) DrawObject(obj core.Object, p core.Point) error {
	return g.DrawBlock(obj.Chars, p.X, p.Y)
}

// Rows returns a copy of the grid contents
func (g *CharGrid) Rows() [][]rune {
	out := make([][]rune, g.height)
	for y, row := range g.rows {
		out[y] = append([]rune(nil), row...)
	}
	return out
}

// Render joins the rows with sep into a snapshot string
// A cell holding sep is indistinguishable from a row break in the result
func (g *CharGrid) Render(sep rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height * 4)
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteRune(sep)
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// String renders with newline separators
func (g *CharGrid) String() string {
	return g.Render('\n')
}

// ParseCharGrid rebuilds a width x height grid from a rendered snapshot
// Short rows are padded with fill; a snapshot of any other shape is rejected,
// which catches cells that held the separator rune when rendered
func ParseCharGrid(s string, sep rune, fill rune, width, height int) (*CharGrid, error) {
	g, err := NewCharGrid(width, height, fill)
	if err != nil {
		return nil, err
	}
	lines := splitRunes(s, sep)
	if len(lines) != height || BlockWidth(lines) > width {
		return nil, fmt.Errorf("%w: snapshot is %dx%d, expected %dx%d",
			core.ErrInvalidConfiguration, BlockWidth(lines), len(lines), width, height)
	}
	for y, row := range NormalizeBlock(lines, fill) {
		copy(g.rows[y], row)
	}
	return g, nil
}
