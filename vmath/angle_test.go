package vmath

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{FullTurn, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tc := range cases {
		got := NormalizeAngle(tc.in)
		if got < 0 || got >= FullTurn {
			t.Errorf("NormalizeAngle(%v) = %v outside [0, 2π)", tc.in, got)
		}
		if !approxEqual(got, tc.expected) {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}

func TestDecomposeContinuousAcrossFullTurn(t *testing.T) {
	// Angles a full turn apart decompose identically
	for _, a := range []float64{0.3, 1.7, -2.2} {
		x1, y1 := Decompose(5, a)
		x2, y2 := Decompose(5, a+FullTurn)
		if math.Abs(x1-x2) > 1e-9 || math.Abs(y1-y2) > 1e-9 {
			t.Errorf("Decompose(5, %v) differs across full turn: (%v,%v) vs (%v,%v)", a, x1, y1, x2, y2)
		}
	}
}

func TestAngledComponents(t *testing.T) {
	if got := AngledX(2, 0); !approxEqual(got, 2) {
		t.Errorf("Expected X=2 at angle 0, got %v", got)
	}
	if got := AngledY(2, math.Pi/2); !approxEqual(got, 2) {
		t.Errorf("Expected Y=2 at angle π/2, got %v", got)
	}
	if got := AngledX(3, math.Pi); !approxEqual(got, -3) {
		t.Errorf("Expected X=-3 at angle π, got %v", got)
	}
}

func TestDegrees(t *testing.T) {
	if got := Degrees(180); !approxEqual(got, math.Pi) {
		t.Errorf("Expected π, got %v", got)
	}
}
