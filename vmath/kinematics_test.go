package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPositionAtZeroTime(t *testing.T) {
	cases := []struct {
		s0, v0, a float64
	}{
		{0, 0, 0},
		{5, 10, 0},
		{-3, -2.5, 9.81},
		{100, 0, -4},
	}

	for _, tc := range cases {
		if got := PositionAt(tc.s0, tc.v0, 0); got != tc.s0 {
			t.Errorf("PositionAt(%v, %v, 0): expected %v, got %v", tc.s0, tc.v0, tc.s0, got)
		}
		if got := PositionAtAccel(tc.s0, tc.v0, tc.a, 0); got != tc.s0 {
			t.Errorf("PositionAtAccel(%v, %v, %v, 0): expected %v, got %v", tc.s0, tc.v0, tc.a, tc.s0, got)
		}
	}
}

func TestPositionAtAccelUsesHalfCoefficient(t *testing.T) {
	// s = 0 + 0*2 + 0.5*2*4 = 4
	if got := PositionAtAccel(0, 0, 2, 2); !approxEqual(got, 4) {
		t.Errorf("Expected 4, got %v", got)
	}
	// s = 1 + 3*2 + 0.5*(-1)*4 = 5
	if got := PositionAtAccel(1, 3, -1, 2); !approxEqual(got, 5) {
		t.Errorf("Expected 5, got %v", got)
	}
}

func TestPositionAtLinear(t *testing.T) {
	if got := PositionAt(4, 10, 1); got != 14 {
		t.Errorf("Expected 14, got %v", got)
	}
	if got := PositionAt(4, -2, 1.5); !approxEqual(got, 1) {
		t.Errorf("Expected 1, got %v", got)
	}
}

func TestVelocityAtLinearInTime(t *testing.T) {
	cases := []struct {
		v0, a, t1, t2 float64
	}{
		{0, 1, 1, 1},
		{3, -2, 0.5, 4},
		{-7, 9.81, 2.25, 0.125},
		{10, 0, 3, 3},
	}

	for _, tc := range cases {
		whole := VelocityAt(tc.v0, tc.a, tc.t1+tc.t2)
		split := VelocityAt(VelocityAt(tc.v0, tc.a, tc.t1), tc.a, tc.t2)
		if !approxEqual(whole, split) {
			t.Errorf("VelocityAt not linear for %+v: whole=%v split=%v", tc, whole, split)
		}
	}
}

func TestWrapCongruence(t *testing.T) {
	cases := []struct {
		p, length, expected float64
	}{
		{-3, 10, 7},
		{10, 10, 0},
		{14, 10, 4},
		{-10, 10, 0},
		{-23.5, 10, 6.5},
		{35, 10, 5},
		{3, 10, 3},
		{-1e-17, 10, 0},
	}

	for _, tc := range cases {
		got := Wrap(tc.p, tc.length)
		if got < 0 || got >= tc.length {
			t.Errorf("Wrap(%v, %v) = %v outside [0, %v)", tc.p, tc.length, got, tc.length)
		}
		if !approxEqual(got, tc.expected) {
			t.Errorf("Wrap(%v, %v): expected %v, got %v", tc.p, tc.length, tc.expected, got)
		}
	}
}

func TestAverageVelocity(t *testing.T) {
	if got := AverageVelocity(10, 0, 2, 0); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := AverageVelocity(10, 0, 3, 3); got != 0 {
		t.Errorf("Expected 0 for zero elapsed time, got %v", got)
	}
}

func TestFrameCount(t *testing.T) {
	cases := []struct {
		from, to int
		step     float64
		expected int
	}{
		{0, 10, 1, 10},
		{0, 10, 3, 3},
		{0, 1, 0.25, 4},
		{5, 5, 1, 0},
		{0, 10, 0, 0},
		{0, 10, -1, 0},
	}

	for _, tc := range cases {
		if got := FrameCount(tc.from, tc.to, tc.step); got != tc.expected {
			t.Errorf("FrameCount(%d, %d, %v): expected %d, got %d", tc.from, tc.to, tc.step, tc.expected, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(14, 0, 3); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := Clamp(-2, 1, 3); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
	if got := Clamp(2, 1, 3); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestClampFloat(t *testing.T) {
	cases := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"inside", 2.5, 2.5},
		{"above int range", 1e20, 9},
		{"below int range", -1e20, 1},
		{"positive infinity", math.Inf(1), 9},
		{"nan", math.NaN(), 1},
	}
	for _, tc := range cases {
		if got := ClampFloat(tc.v, 1, 9); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestFloorInt(t *testing.T) {
	if got := FloorInt(-0.5); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	if got := FloorInt(2.999); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}
