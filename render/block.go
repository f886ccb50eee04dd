package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ascii-motion/core"
)

// BlockWidth returns the longest row length
func BlockWidth(rows [][]rune) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// NormalizeBlock returns a rectangular copy of rows, padding short rows with fill
func NormalizeBlock(rows [][]rune, fill rune) [][]rune {
	width := BlockWidth(rows)
	out := make([][]rune, len(rows))
	for i, row := range rows {
		padded := make([]rune, width)
		n := copy(padded, row)
		for j := n; j < width; j++ {
			padded[j] = fill
		}
		out[i] = padded
	}
	return out
}

// ParseBlock splits text on sep into a rectangular block padded with fill
func ParseBlock(text string, sep rune, fill rune) [][]rune {
	return NormalizeBlock(splitRunes(text, sep), fill)
}

func splitRunes(text string, sep rune) [][]rune {
	parts := strings.Split(text, string(sep))
	rows := make([][]rune, len(parts))
	for i, p := range parts {
		rows[i] = []rune(p)
	}
	return rows
}

// rectWidth returns the shared row length of a rectangular block
func rectWidth(block [][]rune) (int, error) {
	if len(block) == 0 {
		return 0, nil
	}
	width := len(block[0])
	for i, row := range block {
		if len(row) != width {
			return 0, fmt.Errorf("%w: block row %d has length %d, expected %d", core.ErrInvalidConfiguration, i, len(row), width)
		}
	}
	return width, nil
}
