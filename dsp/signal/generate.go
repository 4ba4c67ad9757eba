// Package signal generates deterministic test signals shaped like steering
// recordings: constants, sinusoids, triangle oscillations and isolated
// pulses, plus seeded noise for robustness checks.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator at sampleRate Hz.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", sampleRate)
	}
	g := &Generator{sampleRate: sampleRate, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Constant generates a constant signal.
func (g *Generator) Constant(value float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Triangle generates a triangle oscillation between 0 and amplitude with the
// given period in seconds: a linear rise over the first half period followed
// by a linear fall over the second.
func (g *Generator) Triangle(periodSec, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if periodSec <= 0 {
		return nil, fmt.Errorf("signal: period must be > 0: %f", periodSec)
	}
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.sampleRate
		phase := t/periodSec - math.Floor(t/periodSec)
		if phase < 0.5 {
			out[i] = amplitude * 2 * phase
		} else {
			out[i] = amplitude * 2 * (1 - phase)
		}
	}
	return out, nil
}

// Pulse generates a raised-cosine pulse of the given half width in samples,
// centered at the given sample position, in an otherwise zero signal.
func (g *Generator) Pulse(center, halfWidth, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if halfWidth <= 0 {
		return nil, fmt.Errorf("signal: half width must be > 0: %f", halfWidth)
	}
	out := make([]float64, samples)
	for i := range out {
		d := (float64(i) - center) / halfWidth
		if d > -1 && d < 1 {
			out[i] = amplitude * 0.5 * (1 + math.Cos(math.Pi*d))
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
