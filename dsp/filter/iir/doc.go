// Package iir provides polynomial transfer-function IIR filtering.
//
// A filter is described by numerator (B) and denominator (A) coefficient
// slices in negative powers of z, with A[0] normalized to 1:
//
//	H(z) = (B[0] + B[1]*z^-1 + ... + B[n]*z^-n) /
//	       (1    + A[1]*z^-1 + ... + A[n]*z^-n)
//
// Filter runs a single causal pass (Direct Form II Transposed). FiltFilt runs
// the filter forward and then backward over the time-reversed output so the
// net phase response is zero; features of the output stay aligned in time
// with the input.
package iir
