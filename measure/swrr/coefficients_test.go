package swrr

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-swrr/dsp/filter/design/butter"
	"github.com/cwbudde/algo-swrr/dsp/filter/iir"
)

func TestFilterCoefficientsTableHitIsExact(t *testing.T) {
	// Table hits must return stored values bit-for-bit, with no
	// recomputation (direct equality, not tolerance).
	c, fromTable, err := FilterCoefficients(2, 60, 0.6, Lowpass)
	if err != nil {
		t.Fatalf("FilterCoefficients() error = %v", err)
	}
	if !fromTable {
		t.Fatal("expected table hit for order=2, 0.6 Hz at 60 Hz")
	}

	entry := coefficientTable[0]
	for i := range entry.b {
		if c.B[i] != entry.b[i] {
			t.Fatalf("B[%d] = %b, want stored %b", i, c.B[i], entry.b[i])
		}
	}
	for i := range entry.a {
		if c.A[i] != entry.a[i] {
			t.Fatalf("A[%d] = %b, want stored %b", i, c.A[i], entry.a[i])
		}
	}
}

func TestFilterCoefficientsEquivalentRatePairs(t *testing.T) {
	// (0.6 Hz, 60 Hz) and (1.2 Hz, 120 Hz) share Wn = 0.02 and must resolve
	// to the same table row.
	a, fromTableA, err := FilterCoefficients(2, 60, 0.6, Lowpass)
	if err != nil {
		t.Fatalf("FilterCoefficients() error = %v", err)
	}
	b, fromTableB, err := FilterCoefficients(2, 120, 1.2, Lowpass)
	if err != nil {
		t.Fatalf("FilterCoefficients() error = %v", err)
	}
	if !fromTableA || !fromTableB {
		t.Fatalf("fromTable = %v, %v, want both true", fromTableA, fromTableB)
	}
	for i := range a.B {
		if a.B[i] != b.B[i] || a.A[i] != b.A[i] {
			t.Fatalf("coefficient %d differs between equivalent rate pairs", i)
		}
	}
}

func TestFilterCoefficientsNearMissFallsBack(t *testing.T) {
	// A Wn off a table entry by more than 1e-14 must take the fallback.
	cutoff := 0.6 * (1 + 1e-12)
	_, fromTable, err := FilterCoefficients(2, 60, cutoff, Lowpass)
	if err != nil {
		t.Fatalf("FilterCoefficients() error = %v", err)
	}
	if fromTable {
		t.Fatal("expected fallback for Wn off the table entry by > 1e-14")
	}
}

func TestFilterCoefficientsFallbackMatchesDesign(t *testing.T) {
	got, fromTable, err := FilterCoefficients(3, 60, 1, Lowpass)
	if err != nil {
		t.Fatalf("FilterCoefficients() error = %v", err)
	}
	if fromTable {
		t.Fatal("order-3 design should not be in the table")
	}
	want, err := butter.Lowpass(3, 1.0/30)
	if err != nil {
		t.Fatalf("butter.Lowpass() error = %v", err)
	}
	for i := range want.B {
		if got.B[i] != want.B[i] || got.A[i] != want.A[i] {
			t.Fatalf("fallback coefficient %d differs from direct design", i)
		}
	}
}

// TestTableAgreesWithDesign confirms the frozen table rows track the design
// routine within floating-point noise, so fallback results differ from table
// hits only in the last few digits.
func TestTableAgreesWithDesign(t *testing.T) {
	for _, e := range coefficientTable {
		var (
			c   = iirFromEntry(e)
			ref = designEntry(t, e)
		)
		for i := range c.B {
			if math.Abs(c.B[i]-ref.B[i]) > 1e-9 {
				t.Fatalf("entry order=%d band=%s wn=%v: B[%d] = %v, design %v",
					e.order, e.band, e.wn, i, c.B[i], ref.B[i])
			}
			if math.Abs(c.A[i]-ref.A[i]) > 1e-9 {
				t.Fatalf("entry order=%d band=%s wn=%v: A[%d] = %v, design %v",
					e.order, e.band, e.wn, i, c.A[i], ref.A[i])
			}
		}
	}
}

func iirFromEntry(e tableEntry) iir.Coefficients {
	return iir.Coefficients{B: e.b, A: e.a}
}

func designEntry(t *testing.T, e tableEntry) iir.Coefficients {
	t.Helper()
	var (
		c   iir.Coefficients
		err error
	)
	if e.band == Highpass {
		c, err = butter.Highpass(e.order, e.wn)
	} else {
		c, err = butter.Lowpass(e.order, e.wn)
	}
	if err != nil {
		t.Fatalf("design for table entry order=%d wn=%v: %v", e.order, e.wn, err)
	}
	return c
}

func TestFilterCoefficientsUnknownBand(t *testing.T) {
	if _, _, err := FilterCoefficients(2, 60, 0.6, Band(7)); err != ErrUnknownBand {
		t.Fatalf("error = %v, want ErrUnknownBand", err)
	}
}

func TestFilterCoefficientsInvalidRate(t *testing.T) {
	if _, _, err := FilterCoefficients(2, 0, 0.6, Lowpass); err != ErrInvalidSampleRate {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestBandString(t *testing.T) {
	if Lowpass.String() != "lowpass" || Highpass.String() != "highpass" {
		t.Fatalf("Band strings = %q, %q", Lowpass.String(), Highpass.String())
	}
	if Band(9).String() != "unknown" {
		t.Fatalf("Band(9).String() = %q", Band(9).String())
	}
}
