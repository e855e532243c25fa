package common

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %v, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %v, want 10", got)
	}
}

func TestWrapAngleDeg(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{181, -179},
		{-180, 180},
		{350, -10},
		{-350, 10},
		{720, 0},
		{370, 10},
	}
	for _, c := range cases {
		if got := WrapAngleDeg(c.in); !ApproxEqual(got, c.want, 1e-4) {
			t.Errorf("WrapAngleDeg(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerpAngleDegShortestPath(t *testing.T) {
	// 350 -> 10 must cross 360/0, not travel backward through 180.
	got := LerpAngleDeg(350, 10, 0.5)
	if !ApproxEqual(WrapAngleDeg(got), 0, 1e-4) {
		t.Errorf("LerpAngleDeg(350,10,0.5) = %v, want wrap-equivalent of 0", got)
	}
	// A tiny step must increase the angle (moving toward 360), not decrease it.
	step := LerpAngleDeg(350, 10, 0.1)
	if step <= 350 {
		t.Errorf("LerpAngleDeg(350,10,0.1) = %v, expected movement above 350", step)
	}
	// And the symmetric case in the other direction.
	step = LerpAngleDeg(10, 350, 0.1)
	if step >= 10 {
		t.Errorf("LerpAngleDeg(10,350,0.1) = %v, expected movement below 10", step)
	}
}

func TestSmoothStep(t *testing.T) {
	if got := SmoothStep(0); got != 0 {
		t.Errorf("SmoothStep(0) = %v, want 0", got)
	}
	if got := SmoothStep(1); got != 1 {
		t.Errorf("SmoothStep(1) = %v, want 1", got)
	}
	// The curve is symmetric about the midpoint.
	if got := SmoothStep(0.5); got != 0.5 {
		t.Errorf("SmoothStep(0.5) = %v, want exactly 0.5", got)
	}
	// Out-of-range inputs clamp to the endpoints.
	if got := SmoothStep(-2); got != 0 {
		t.Errorf("SmoothStep(-2) = %v, want 0", got)
	}
	if got := SmoothStep(3); got != 1 {
		t.Errorf("SmoothStep(3) = %v, want 1", got)
	}
	// Zero slope at the ends: values near the endpoints barely move.
	if got := SmoothStep(0.01); got > 0.001 {
		t.Errorf("SmoothStep(0.01) = %v, expected near-zero easing at the start", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 7, 3); got != 7 {
		t.Errorf("Coalesce(0,0,7,3) = %v, want 7", got)
	}
	if got := Coalesce("", "a"); got != "a" {
		t.Errorf("Coalesce(\"\",\"a\") = %q, want \"a\"", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce(0,0) = %v, want 0", got)
	}
}
