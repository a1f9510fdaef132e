// SPDX-License-Identifier: MPL-2.0

package mathutil

import (
	"testing"

	"corekit/pkg/tabletest"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(5, 1, 10); got != 5 {
		t.Errorf("Clamp(5, 1, 10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(42.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(42.5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp("m", "a", "f"); got != "f" {
		t.Errorf("Clamp strings = %q, want %q", got, "f")
	}

	defer func() {
		if recover() == nil {
			t.Error("inverted interval should panic")
		}
	}()
	Clamp(1, 10, 0)
}

func TestLerp(t *testing.T) {
	t.Parallel()

	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp at t=0 = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp at t=1 = %v, want 20", got)
	}
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Errorf("Lerp extrapolates: got %v, want 15", got)
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	type in struct {
		V      float64
		Places int
	}

	tabletest.RunTotal(t, []tabletest.Case[in, float64]{
		{Name: "two places", In: in{3.14159, 2}, Want: 3.14},
		{Name: "rounds half up", In: in{2.675e2, 0}, Want: 268},
		{Name: "zero places", In: in{9.49, 0}, Want: 9},
		{Name: "negative value", In: in{-1.2346, 3}, Want: -1.235},
	}, func(i in) float64 { return RoundTo(i.V, i.Places) })
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	if !ApproxEqual(0.1+0.2, 0.3, 1e-9) {
		t.Error("0.1+0.2 should approx-equal 0.3")
	}
	if ApproxEqual(1.0, 1.01, 1e-3) {
		t.Error("1.0 should not approx-equal 1.01 at 1e-3")
	}
}

func TestGCDLCM(t *testing.T) {
	t.Parallel()

	if got := GCD(12, 18); got != 6 {
		t.Errorf("GCD(12, 18) = %d, want 6", got)
	}
	if got := GCD(-12, 18); got != 6 {
		t.Errorf("GCD(-12, 18) = %d, want 6", got)
	}
	if got := GCD(7, 0); got != 7 {
		t.Errorf("GCD(7, 0) = %d, want 7", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM(4, 6) = %d, want 12", got)
	}
	if got := LCM(0, 5); got != 0 {
		t.Errorf("LCM(0, 5) = %d, want 0", got)
	}
}

func TestSumMean(t *testing.T) {
	t.Parallel()

	if got := Sum([]int{1, 2, 3}); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := Sum([]float64{0.5, 0.25}); got != 0.75 {
		t.Errorf("Sum floats = %v, want 0.75", got)
	}
	if m, ok := Mean([]int{1, 2, 3, 4}); !ok || m != 2.5 {
		t.Errorf("Mean = (%v, %v), want (2.5, true)", m, ok)
	}
	if _, ok := Mean([]int{}); ok {
		t.Error("Mean of empty should be not-ok")
	}
}
