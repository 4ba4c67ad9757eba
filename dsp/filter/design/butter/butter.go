package butter

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-swrr/dsp/filter/iir"
)

var (
	// ErrInvalidOrder indicates a non-positive filter order.
	ErrInvalidOrder = errors.New("butter: order must be >= 1")
	// ErrInvalidCutoff indicates a normalized cutoff outside (0, 1).
	ErrInvalidCutoff = errors.New("butter: normalized cutoff must be in (0, 1)")
)

// Lowpass designs a lowpass Butterworth filter of the given order with
// normalized cutoff wn in (0, 1), where 1 corresponds to Nyquist.
func Lowpass(order int, wn float64) (iir.Coefficients, error) {
	return design(order, wn, false)
}

// Highpass designs a highpass Butterworth filter of the given order with
// normalized cutoff wn in (0, 1).
func Highpass(order int, wn float64) (iir.Coefficients, error) {
	return design(order, wn, true)
}

// LowpassFreq designs a lowpass Butterworth filter from a cutoff frequency in
// Hz and a sample rate in Hz.
func LowpassFreq(order int, cutoff, sampleRate float64) (iir.Coefficients, error) {
	if sampleRate <= 0 {
		return iir.Coefficients{}, ErrInvalidCutoff
	}
	return Lowpass(order, cutoff/(sampleRate/2))
}

// HighpassFreq designs a highpass Butterworth filter from a cutoff frequency
// in Hz and a sample rate in Hz.
func HighpassFreq(order int, cutoff, sampleRate float64) (iir.Coefficients, error) {
	if sampleRate <= 0 {
		return iir.Coefficients{}, ErrInvalidCutoff
	}
	return Highpass(order, cutoff/(sampleRate/2))
}

func design(order int, wn float64, highpass bool) (iir.Coefficients, error) {
	if order < 1 {
		return iir.Coefficients{}, ErrInvalidOrder
	}
	if !(wn > 0 && wn < 1) || math.IsNaN(wn) {
		return iir.Coefficients{}, ErrInvalidCutoff
	}

	// Pre-warp the cutoff for the bilinear transform.
	warped := math.Tan(math.Pi * wn / 2)

	// Analog prototype poles on the left half of the unit circle,
	// θ = π(2k+order+1)/(2·order), scaled to the warped cutoff. A highpass
	// comes from the s -> warped/s prototype transformation.
	poles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		p := cmplx.Exp(complex(0, theta))
		if highpass {
			p = complex(warped, 0) / p
		} else {
			p = complex(warped, 0) * p
		}

		// Bilinear transform s -> (z-1)/(z+1).
		poles[k] = (1 + p) / (1 - p)
	}

	a := realPoly(poles)

	// Lowpass zeros all map to z = -1, highpass zeros to z = +1.
	zero := complex(-1, 0)
	if highpass {
		zero = complex(1, 0)
	}
	zeros := make([]complex128, order)
	for i := range zeros {
		zeros[i] = zero
	}
	b := realPoly(zeros)

	// Normalize the passband gain to unity: at z=1 (DC) for lowpass, at
	// z=-1 (Nyquist) for highpass.
	var gain float64
	if highpass {
		gain = evalAlternating(a) / evalAlternating(b)
	} else {
		gain = sum(a) / sum(b)
	}
	for i := range b {
		b[i] *= gain
	}

	return iir.Coefficients{B: b, A: a}, nil
}

// realPoly expands a polynomial from its roots and returns the real
// coefficient slice, highest power first with a leading 1. Roots must come in
// conjugate pairs (or be real) for the imaginary parts to cancel.
func realPoly(roots []complex128) []float64 {
	coeffs := make([]complex128, 1, len(roots)+1)
	coeffs[0] = 1
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}

func sum(s []float64) float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// evalAlternating evaluates a z^-1 polynomial at z = -1.
func evalAlternating(s []float64) float64 {
	total := 0.0
	sign := 1.0
	for _, v := range s {
		total += sign * v
		sign = -sign
	}
	return total
}
