package swrr

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-swrr/dsp/filter/design/butter"
	"github.com/cwbudde/algo-swrr/dsp/filter/iir"
)

// ErrUnknownBand indicates a band identifier other than Lowpass or Highpass.
var ErrUnknownBand = errors.New("swrr: unknown filter band")

// Band selects the filter band for coefficient provisioning.
type Band int

const (
	// Lowpass selects a lowpass design.
	Lowpass Band = iota
	// Highpass selects a highpass design.
	Highpass
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

// wnTolerance is the absolute tolerance for matching normalized cutoffs
// against the precomputed table. It absorbs rounding from different
// (sampleRate, cutoff) pairs that yield the same ratio.
const wnTolerance = 1e-14

// FilterCoefficients returns the Butterworth transfer function for the given
// order, sample rate, cutoff frequency (all Hz) and band. Configurations
// present in the precomputed table are returned verbatim from it and
// fromTable is true; anything else is designed on the fly.
func FilterCoefficients(order int, sampleRate, cutoff float64, band Band) (c iir.Coefficients, fromTable bool, err error) {
	if band != Lowpass && band != Highpass {
		return iir.Coefficients{}, false, ErrUnknownBand
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return iir.Coefficients{}, false, ErrInvalidSampleRate
	}

	wn := cutoff / (sampleRate / 2)

	for i := range coefficientTable {
		e := &coefficientTable[i]
		if e.order == order && e.band == band && math.Abs(e.wn-wn) < wnTolerance {
			return iir.Coefficients{
				B: append([]float64(nil), e.b...),
				A: append([]float64(nil), e.a...),
			}, true, nil
		}
	}

	if band == Highpass {
		c, err = butter.Highpass(order, wn)
	} else {
		c, err = butter.Lowpass(order, wn)
	}

	return c, false, err
}
