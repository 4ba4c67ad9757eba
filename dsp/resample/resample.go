package resample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/interp"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrTooShort indicates an input with fewer than two samples.
	ErrTooShort = errors.New("resample: input must contain at least 2 samples")
)

// durationEpsilon absorbs rounding in duration*rate products that are
// mathematically exact integers.
const durationEpsilon = 1e-9

// Linear converts input from inRate to outRate (both Hz) by linear
// interpolation over the same total duration (len(input)-1)/inRate.
// Equal rates return a copy of the input unchanged.
func Linear(input []float64, inRate, outRate float64) ([]float64, error) {
	if !validRate(inRate) || !validRate(outRate) {
		return nil, ErrInvalidRate
	}
	if len(input) < 2 {
		return nil, ErrTooShort
	}

	if inRate == outRate {
		out := make([]float64, len(input))
		copy(out, input)
		return out, nil
	}

	xs := make([]float64, len(input))
	for i := range xs {
		xs[i] = float64(i) / inRate
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, input); err != nil {
		return nil, err
	}

	duration := float64(len(input)-1) / inRate
	n := OutputLen(len(input), inRate, outRate)

	out := make([]float64, n)
	for j := range out {
		t := float64(j) / outRate
		if t > duration {
			t = duration
		}
		out[j] = pl.Predict(t)
	}

	return out, nil
}

// OutputLen returns the number of samples Linear produces for an input of
// inputLen samples: one sample per outRate period fitting in the input
// duration, plus the sample at t=0.
func OutputLen(inputLen int, inRate, outRate float64) int {
	if inputLen < 2 || !validRate(inRate) || !validRate(outRate) {
		return 0
	}
	duration := float64(inputLen-1) / inRate
	return int(math.Floor(duration*outRate+durationEpsilon)) + 1
}

// Ratio returns the conversion ratio outRate/inRate.
func Ratio(inRate, outRate float64) float64 {
	if !validRate(inRate) || !validRate(outRate) {
		return 0
	}
	return outRate / inRate
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsNaN(rate) && !math.IsInf(rate, 0)
}
