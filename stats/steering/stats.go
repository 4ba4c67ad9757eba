// Package steering computes descriptive statistics of a steering-angle
// recording for research reports: time-domain amplitude measures plus the
// frequency-domain descriptors driving studies cite (peak steering
// frequency, mean steering frequency, high-frequency steering share).
package steering

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
)

// DefaultSplitFreq is the boundary between low- and high-frequency steering
// power, in Hz. Steering activity above roughly 0.6 Hz is commonly read as
// corrective rather than guidance input.
const DefaultSplitFreq = 0.6

// Stats holds descriptive statistics of one steering recording.
type Stats struct {
	Samples  int
	Duration float64 // seconds

	Mean          float64 // degrees
	RMS           float64
	Min           float64
	Max           float64
	Range         float64
	Peak          float64 // max(|Min|, |Max|)
	StdDev        float64
	ZeroCrossings int

	PeakFreq      float64 // Hz, strongest non-DC spectral component
	MeanFreq      float64 // Hz, power spectral centroid
	HighFreqRatio float64 // share of power above the split frequency, 0..1
}

// Calculate computes statistics with the default split frequency.
func Calculate(signal []float64, sampleRate float64) Stats {
	return CalculateSplit(signal, sampleRate, DefaultSplitFreq)
}

// CalculateSplit computes statistics with an explicit low/high split
// frequency in Hz. A recording shorter than two samples or a non-positive
// sample rate yields zero Stats.
func CalculateSplit(signal []float64, sampleRate, splitFreq float64) Stats {
	n := len(signal)
	if n < 2 || sampleRate <= 0 || math.IsNaN(sampleRate) {
		return Stats{Samples: n}
	}

	var s Stats
	s.Samples = n
	s.Duration = float64(n-1) / sampleRate

	s.Mean = floats.Sum(signal) / float64(n)
	s.Min = floats.Min(signal)
	s.Max = floats.Max(signal)
	s.Range = s.Max - s.Min
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	s.RMS = math.Sqrt(floats.Dot(signal, signal) / float64(n))

	variance := 0.0
	for _, v := range signal {
		d := v - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(n))

	for i := 1; i < n; i++ {
		if (signal[i-1] < 0 && signal[i] >= 0) || (signal[i-1] >= 0 && signal[i] < 0) {
			s.ZeroCrossings++
		}
	}

	s.PeakFreq, s.MeanFreq, s.HighFreqRatio = spectrumDescriptors(signal, sampleRate, splitFreq, s.Mean)

	return s
}

// spectrumDescriptors computes the power-spectrum descriptors of the
// de-meaned recording. DC is removed so slowly drifting wheel offsets do not
// dominate the centroid.
func spectrumDescriptors(signal []float64, sampleRate, splitFreq, mean float64) (peakFreq, meanFreq, hfRatio float64) {
	fftSize := nextPowerOf2(len(signal))
	if fftSize <= 1 {
		return 0, 0, 0
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, 0, 0
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, 0, 0
	}

	binCount := fftSize/2 + 1
	binHz := sampleRate / float64(fftSize)

	var (
		total    float64
		high     float64
		weighted float64
		bestBin  int
		bestPow  float64
	)
	for i := 1; i < binCount; i++ {
		c := out[i]
		p := real(c)*real(c) + imag(c)*imag(c)

		freq := float64(i) * binHz
		total += p
		weighted += freq * p
		if freq > splitFreq {
			high += p
		}
		if p > bestPow {
			bestPow = p
			bestBin = i
		}
	}

	if total <= 0 {
		return 0, 0, 0
	}

	return float64(bestBin) * binHz, weighted / total, high / total
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
