package common

import (
	"math"
	"testing"
)

func TestLerpAngleShortestArc(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"midpoint", 0, math.Pi / 2, 0.5, math.Pi / 4},
		{"wrap_positive", 3, -3, 0.5, math.Pi},            // shorter path crosses ±π
		{"t_zero", 1, 2, 0, 1},
		{"t_clamped_high", 0, 1, 2, 1},
		{"t_clamped_low", 0.5, 2, -1, 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LerpAngle(c.a, c.b, c.t)
			if math.Abs(WrapAngle(got-c.want)) > 1e-9 {
				t.Fatalf("LerpAngle(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("WrapAngle(3π) = %v, want π", got)
	}
	if got := WrapAngle(-3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("WrapAngle(-3π) = %v, want π", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("Clamp(0.25,0,1) = %v, want 0.25", got)
	}
}
