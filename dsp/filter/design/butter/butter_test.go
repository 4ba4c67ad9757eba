package butter

import (
	"math"
	"testing"
)

func approxEqual(got, want []float64, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			return false
		}
	}
	return true
}

func TestLowpassHalfband(t *testing.T) {
	// Reference values for butter(2, 0.5).
	c, err := Lowpass(2, 0.5)
	if err != nil {
		t.Fatalf("Lowpass() error = %v", err)
	}
	wantB := []float64{0.2928932188134524, 0.5857864376269049, 0.2928932188134524}
	wantA := []float64{1, 0, 0.17157287525380988}
	if !approxEqual(c.B, wantB, 1e-12) {
		t.Fatalf("B = %v, want %v", c.B, wantB)
	}
	if !approxEqual(c.A, wantA, 1e-12) {
		t.Fatalf("A = %v, want %v", c.A, wantA)
	}
}

func TestHighpassFirstOrder(t *testing.T) {
	// Reference values for butter(1, 0.5, highpass).
	c, err := Highpass(1, 0.5)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	if !approxEqual(c.B, []float64{0.5, -0.5}, 1e-12) {
		t.Fatalf("B = %v, want [0.5 -0.5]", c.B)
	}
	if !approxEqual(c.A, []float64{1, 0}, 1e-12) {
		t.Fatalf("A = %v, want [1 0]", c.A)
	}
}

func TestDesignShape(t *testing.T) {
	tests := []struct {
		order int
		wn    float64
	}{
		{1, 0.02},
		{2, 0.02},
		{2, 0.1},
		{3, 0.25},
		{4, 0.1},
		{5, 0.6},
	}
	for _, tc := range tests {
		c, err := Lowpass(tc.order, tc.wn)
		if err != nil {
			t.Fatalf("Lowpass(%d, %v) error = %v", tc.order, tc.wn, err)
		}
		if len(c.B) != tc.order+1 || len(c.A) != tc.order+1 {
			t.Fatalf("Lowpass(%d, %v): len(B)=%d len(A)=%d, want %d",
				tc.order, tc.wn, len(c.B), len(c.A), tc.order+1)
		}
		if c.A[0] != 1 {
			t.Fatalf("Lowpass(%d, %v): A[0] = %v, want 1", tc.order, tc.wn, c.A[0])
		}
	}
}

// TestLowpassUnityDCGain verifies sum(B)/sum(A) == 1, i.e. H(z=1) = 1.
func TestLowpassUnityDCGain(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6} {
		c, err := Lowpass(order, 0.15)
		if err != nil {
			t.Fatalf("Lowpass(%d) error = %v", order, err)
		}
		sb, sa := 0.0, 0.0
		for i := range c.B {
			sb += c.B[i]
			sa += c.A[i]
		}
		if g := sb / sa; math.Abs(g-1) > 1e-10 {
			t.Fatalf("order %d: DC gain = %v, want 1", order, g)
		}
	}
}

// TestHighpassUnityNyquistGain verifies H(z=-1) = 1.
func TestHighpassUnityNyquistGain(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		c, err := Highpass(order, 0.3)
		if err != nil {
			t.Fatalf("Highpass(%d) error = %v", order, err)
		}
		sb, sa := 0.0, 0.0
		sign := 1.0
		for i := range c.B {
			sb += sign * c.B[i]
			sa += sign * c.A[i]
			sign = -sign
		}
		if g := sb / sa; math.Abs(g-1) > 1e-10 {
			t.Fatalf("order %d: Nyquist gain = %v, want 1", order, g)
		}
	}
}

// TestPoleStability checks all denominator roots lie inside the unit circle
// by the sufficient Jury conditions for order 2 and |a1| < 1 for order 1.
func TestPoleStability(t *testing.T) {
	for _, wn := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		c, err := Lowpass(2, wn)
		if err != nil {
			t.Fatalf("Lowpass(2, %v) error = %v", wn, err)
		}
		a1, a2 := c.A[1], c.A[2]
		if !(math.Abs(a2) < 1 && math.Abs(a1) < 1+a2) {
			t.Fatalf("wn=%v: unstable denominator a1=%v a2=%v", wn, a1, a2)
		}
	}
}

func TestFreqWrappers(t *testing.T) {
	direct, err := Lowpass(2, 0.02)
	if err != nil {
		t.Fatalf("Lowpass() error = %v", err)
	}
	viaFreq, err := LowpassFreq(2, 0.6, 60)
	if err != nil {
		t.Fatalf("LowpassFreq() error = %v", err)
	}
	if !approxEqual(direct.B, viaFreq.B, 1e-12) || !approxEqual(direct.A, viaFreq.A, 1e-12) {
		t.Fatalf("LowpassFreq(2, 0.6, 60) = %v/%v, want %v/%v",
			viaFreq.B, viaFreq.A, direct.B, direct.A)
	}
}

func TestDesignValidation(t *testing.T) {
	if _, err := Lowpass(0, 0.5); err != ErrInvalidOrder {
		t.Fatalf("Lowpass(0, 0.5) error = %v, want ErrInvalidOrder", err)
	}
	for _, wn := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		if _, err := Lowpass(2, wn); err != ErrInvalidCutoff {
			t.Fatalf("Lowpass(2, %v) error = %v, want ErrInvalidCutoff", wn, err)
		}
	}
	if _, err := HighpassFreq(2, 1, 0); err != ErrInvalidCutoff {
		t.Fatalf("HighpassFreq with zero rate error = %v, want ErrInvalidCutoff", err)
	}
}
