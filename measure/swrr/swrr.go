package swrr

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-swrr/dsp/filter/iir"
	"github.com/cwbudde/algo-swrr/dsp/resample"
)

const defaultFilterOrder = 2

var (
	// ErrInvalidSampleRate indicates a non-positive sample or resample rate.
	ErrInvalidSampleRate = errors.New("swrr: sample rate must be > 0")
	// ErrSignalTooShort indicates a recording, or its resampled form, with
	// fewer than two samples.
	ErrSignalTooShort = errors.New("swrr: signal must contain at least 2 samples")
	// ErrInvalidFilterOrder indicates a negative filter order.
	ErrInvalidFilterOrder = errors.New("swrr: filter order must be >= 1")
	// ErrInvalidGapSize indicates a NaN gap size.
	ErrInvalidGapSize = errors.New("swrr: gap size must not be NaN")
	// ErrInvalidCutoff indicates a negative or non-finite cutoff frequency.
	ErrInvalidCutoff = errors.New("swrr: cutoff frequency must be >= 0")
)

// Config holds reversal-rate parameters.
//
// CutoffFreq of zero disables filtering, ResampleRate of zero keeps the
// input rate, and FilterOrder of zero selects the default order 2.
type Config struct {
	SampleRate   float64 // Hz, required
	GapSize      float64 // degrees; minimum excursion to count as a reversal
	CutoffFreq   float64 // Hz; 0 = no filtering
	ResampleRate float64 // Hz; 0 = SampleRate
	FilterOrder  int     // 0 = 2
}

// WarningCode identifies a non-fatal warning category.
type WarningCode int

const (
	// WarnSlowResample flags a resample target below the source rate.
	WarnSlowResample WarningCode = iota + 1
	// WarnDesignFallback flags a filter configuration absent from the
	// precomputed table.
	WarnDesignFallback
)

// String returns the warning category name.
func (c WarningCode) String() string {
	switch c {
	case WarnSlowResample:
		return "slow-resample"
	case WarnDesignFallback:
		return "design-fallback"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal, categorized diagnostic. Warnings never affect the
// validity of the returned rate.
type Warning struct {
	Code    WarningCode
	Message string
}

// Result holds the reversal rate together with the derived data diagnostic
// consumers plot: the conditioned signal, the extrema candidates and the
// qualifying reversal pairs. All indices refer to the conditioned signal.
type Result struct {
	Rate          float64 // reversals per minute
	ReversalCount int
	Upward        []Reversal
	Downward      []Reversal
	Extrema       []int

	Conditioned     []float64
	ConditionedRate float64 // Hz
	Duration        float64 // seconds, (len-1)/rate of the conditioned signal

	Warnings []Warning
}

// Calculator computes the reversal rate for a fixed configuration. A
// Calculator holds no per-signal state and may be shared across goroutines.
type Calculator struct {
	cfg        Config
	suppressed map[WarningCode]bool
	handler    func(Warning)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithWarningSuppressed drops warnings of the given category from the Result
// and from the warning handler. Suppression never changes the computed rate
// or which code path runs.
func WithWarningSuppressed(code WarningCode) Option {
	return func(c *Calculator) {
		c.suppressed[code] = true
	}
}

// WithWarningHandler registers an observer invoked for each non-suppressed
// warning as it is emitted.
func WithWarningHandler(fn func(Warning)) Option {
	return func(c *Calculator) {
		c.handler = fn
	}
}

// NewCalculator creates a calculator from cfg, applying defaults for unset
// optional fields.
func NewCalculator(cfg Config, opts ...Option) *Calculator {
	c := &Calculator{
		cfg:        normalizeConfig(cfg),
		suppressed: make(map[WarningCode]bool),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Compute is a one-shot reversal-rate computation.
func Compute(signal []float64, cfg Config, opts ...Option) (Result, error) {
	return NewCalculator(cfg, opts...).Compute(signal)
}

// Compute conditions the signal, detects reversals and returns the rate
// normalized to reversals per minute. Fatal validation errors abort with a
// zero Result.
func (c *Calculator) Compute(signal []float64) (Result, error) {
	if err := c.validate(signal); err != nil {
		return Result{}, err
	}

	var res Result

	conditioned, rate, err := c.condition(signal, &res)
	if err != nil {
		return Result{}, err
	}

	det := DetectReversals(conditioned, c.cfg.GapSize)

	res.Conditioned = conditioned
	res.ConditionedRate = rate
	res.Extrema = det.Extrema
	res.Upward = det.Upward
	res.Downward = det.Downward
	res.ReversalCount = det.Count()
	res.Duration = float64(len(conditioned)-1) / rate
	res.Rate = float64(res.ReversalCount) / res.Duration * 60

	return res, nil
}

func (c *Calculator) validate(signal []float64) error {
	cfg := c.cfg
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return ErrInvalidSampleRate
	}
	if cfg.ResampleRate <= 0 || math.IsNaN(cfg.ResampleRate) || math.IsInf(cfg.ResampleRate, 0) {
		return ErrInvalidSampleRate
	}
	if len(signal) < 2 {
		return ErrSignalTooShort
	}
	if cfg.FilterOrder < 1 {
		return ErrInvalidFilterOrder
	}
	if math.IsNaN(cfg.GapSize) {
		return ErrInvalidGapSize
	}
	if cfg.CutoffFreq < 0 || math.IsNaN(cfg.CutoffFreq) || math.IsInf(cfg.CutoffFreq, 0) {
		return ErrInvalidCutoff
	}
	return nil
}

// condition resamples and filters the signal per the configuration and
// returns the conditioned samples with their effective sample rate.
func (c *Calculator) condition(signal []float64, res *Result) ([]float64, float64, error) {
	cfg := c.cfg

	conditioned := signal
	rate := cfg.SampleRate

	if cfg.ResampleRate != cfg.SampleRate {
		if cfg.ResampleRate < cfg.SampleRate {
			c.warn(res, WarnSlowResample,
				"swrr: resampling to a slower rate (%g Hz -> %g Hz) discards information before detection",
				cfg.SampleRate, cfg.ResampleRate)
		}

		out, err := resample.Linear(signal, cfg.SampleRate, cfg.ResampleRate)
		if err != nil {
			return nil, 0, err
		}
		// The conditioned signal must keep a positive duration, or the
		// rate normalization divides by zero.
		if len(out) < 2 {
			return nil, 0, ErrSignalTooShort
		}
		conditioned = out
		rate = cfg.ResampleRate
	}

	if cfg.CutoffFreq == 0 {
		return conditioned, rate, nil
	}

	coeffs, fromTable, err := FilterCoefficients(cfg.FilterOrder, rate, cfg.CutoffFreq, Lowpass)
	if err != nil {
		return nil, 0, err
	}
	if !fromTable {
		c.warn(res, WarnDesignFallback,
			"swrr: filter configuration not precomputed (order=%d band=%s Wn=%.17g), used computed design b=%v a=%v",
			cfg.FilterOrder, Lowpass, cfg.CutoffFreq/(rate/2), coeffs.B, coeffs.A)
	}

	filtered, err := iir.FiltFilt(coeffs, conditioned)
	if err != nil {
		return nil, 0, err
	}

	return filtered, rate, nil
}

func (c *Calculator) warn(res *Result, code WarningCode, format string, args ...any) {
	if c.suppressed[code] {
		return
	}

	w := Warning{Code: code, Message: fmt.Sprintf(format, args...)}
	res.Warnings = append(res.Warnings, w)

	if c.handler != nil {
		c.handler(w)
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.ResampleRate == 0 {
		cfg.ResampleRate = cfg.SampleRate
	}
	if cfg.FilterOrder == 0 {
		cfg.FilterOrder = defaultFilterOrder
	}
	return cfg
}
