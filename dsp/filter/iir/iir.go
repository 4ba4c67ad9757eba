package iir

import (
	"errors"
	"math"
)

var (
	// ErrEmptyCoefficients indicates a missing numerator or denominator.
	ErrEmptyCoefficients = errors.New("iir: empty coefficients")
	// ErrDenormalizedDenominator indicates A[0] != 1.
	ErrDenormalizedDenominator = errors.New("iir: denominator not normalized (A[0] must be 1)")
)

// Coefficients holds transfer-function coefficients in negative powers of z.
// The denominator is normalized such that A[0] == 1.
type Coefficients struct {
	B []float64 // feedforward (numerator)
	A []float64 // feedback (denominator), A[0] == 1
}

// Order returns the filter order, max(len(B), len(A)) - 1.
func (c Coefficients) Order() int {
	n := len(c.B)
	if len(c.A) > n {
		n = len(c.A)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Validate reports whether the coefficient set is usable for filtering.
func (c Coefficients) Validate() error {
	if len(c.B) == 0 || len(c.A) == 0 {
		return ErrEmptyCoefficients
	}
	if c.A[0] != 1 {
		return ErrDenormalizedDenominator
	}
	for _, v := range c.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrEmptyCoefficients
		}
	}
	for _, v := range c.A {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrEmptyCoefficients
		}
	}
	return nil
}

// Filter applies the filter in a single forward pass with zero initial state
// and returns a new slice.
//
// This is a Direct Form II Transposed implementation generalized from the
// second-order section recurrence to arbitrary order:
//
//	y     = B[0]*x + d[0]
//	d[i]  = B[i+1]*x - A[i+1]*y + d[i+1]
func Filter(c Coefficients, input []float64) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	order := c.Order()

	b := make([]float64, order+1)
	copy(b, c.B)
	a := make([]float64, order+1)
	copy(a, c.A)

	d := make([]float64, order+1) // d[order] stays 0
	out := make([]float64, len(input))

	for i, x := range input {
		y := b[0]*x + d[0]
		for k := 0; k < order; k++ {
			d[k] = b[k+1]*x - a[k+1]*y + d[k+1]
		}

		out[i] = y
	}

	return out, nil
}

// FiltFilt applies the filter forward, then again on the time-reversed result,
// and reverses once more. The two passes cancel each other's phase delay, so
// the output has zero net group delay at the cost of squaring the magnitude
// response. Both passes start from zero state.
func FiltFilt(c Coefficients, input []float64) ([]float64, error) {
	fwd, err := Filter(c, input)
	if err != nil {
		return nil, err
	}

	reverse(fwd)

	bwd, err := Filter(c, fwd)
	if err != nil {
		return nil, err
	}

	reverse(bwd)

	return bwd, nil
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
