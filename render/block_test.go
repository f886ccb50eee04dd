package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeBlockPadsShortRows(t *testing.T) {
	rows := [][]rune{[]rune("abc"), []rune("d"), {}}
	got := NormalizeBlock(rows, ' ')
	want := [][]rune{[]rune("abc"), []rune("d  "), []rune("   ")}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeBlock mismatch (-want +got):\n%s", diff)
	}
	// Source rows are untouched
	if string(rows[1]) != "d" {
		t.Errorf("Expected input row unchanged, got %q", string(rows[1]))
	}
}

func TestParseBlock(t *testing.T) {
	got := ParseBlock(" o\n/|\\\n/ \\", '\n', ' ')
	if BlockWidth(got) != 3 || len(got) != 3 {
		t.Fatalf("Expected 3x3 block, got %dx%d", BlockWidth(got), len(got))
	}
	if string(got[0]) != " o " {
		t.Errorf("Expected padded first row %q, got %q", " o ", string(got[0]))
	}
}

func TestBlockWidth(t *testing.T) {
	if got := BlockWidth(nil); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := BlockWidth([][]rune{[]rune("ab"), []rune("abcd"), []rune("a")}); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}
