package swrr

// Reversal is a pair of extrema indices into the conditioned signal between
// which the angle rises (upward scan) or falls (downward scan) by more than
// the gap size.
type Reversal struct {
	Start int
	End   int
}

// Detection holds the output of a reversal scan: the extrema candidate
// indices and the qualifying pairs from both directional scans.
type Detection struct {
	Extrema  []int
	Upward   []Reversal
	Downward []Reversal
}

// Count returns the pooled number of reversals across both scans.
func (d Detection) Count() int {
	return len(d.Upward) + len(d.Downward)
}

// DetectReversals finds direction changes of at least gapSize degrees in a
// signal. Extrema are extracted once; the upward scan runs on the signal
// as-is and the downward scan on its negation (extrema of a signal and its
// negation coincide).
func DetectReversals(signal []float64, gapSize float64) Detection {
	extrema := findExtrema(signal)

	det := Detection{
		Extrema: extrema,
		Upward:  scanReversals(signal, extrema, gapSize),
	}

	negated := make([]float64, len(signal))
	for i, v := range signal {
		negated[i] = -v
	}
	det.Downward = scanReversals(negated, extrema, gapSize)

	return det
}

// findExtrema returns a strictly increasing list of candidate extremum
// indices: every index whose first difference is exactly zero (plateau
// points) and every index where the difference strictly changes sign. The
// first difference is defined as zero at index 0, so the first sample always
// qualifies, and the final sample is always appended so a terminal monotonic
// run can close a reversal.
func findExtrema(signal []float64) []int {
	n := len(signal)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	d := make([]float64, n)
	for i := 1; i < n; i++ {
		d[i] = signal[i] - signal[i-1]
	}

	extrema := make([]int, 0, n/2+2)
	for i := 0; i < n-1; i++ {
		if d[i] == 0 || (d[i] > 0 && d[i+1] < 0) || (d[i] < 0 && d[i+1] > 0) {
			extrema = append(extrema, i)
		}
	}

	return append(extrema, n-1)
}

// scanReversals performs the greedy single-pass upward scan over the extrema
// candidates. The reference extremum tracks the lowest point seen since the
// last qualifying reversal; a rise above it by more than gapSize records a
// pair and moves the reference to the far end, and a rise that is too small
// leaves the reference untouched.
func scanReversals(signal []float64, extrema []int, gapSize float64) []Reversal {
	if len(extrema) < 2 {
		return nil
	}

	var out []Reversal

	ref := extrema[0]
	for _, j := range extrema[1:] {
		switch {
		case signal[j]-signal[ref] > gapSize:
			out = append(out, Reversal{Start: ref, End: j})
			ref = j
		case signal[j] <= signal[ref]:
			ref = j
		}
	}

	return out
}
