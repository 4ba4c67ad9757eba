// Package butter designs digital Butterworth filters as polynomial transfer
// functions.
//
// Designs are parameterized by filter order and the cutoff frequency
// normalized to Nyquist, Wn = cutoff / (sampleRate/2), with Wn in (0, 1).
// The returned coefficients have length order+1 for both numerator and
// denominator, with the denominator normalized so A[0] == 1.
//
// The design follows the standard analog-prototype route: Butterworth poles
// on the unit circle, frequency warp tan(π·Wn/2), bilinear transform, and
// polynomial expansion of the resulting digital poles and zeros.
package butter
