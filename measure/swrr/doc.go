// Package swrr computes the steering wheel reversal rate, the per-minute
// rate at which a steering-angle recording changes direction by more than a
// configurable gap size. The metric is used in driver-distraction research
// to quantify steering micro-corrections.
//
// The computation pipeline is: optional linear resampling, optional
// zero-phase Butterworth lowpass filtering, extrema extraction, and two
// greedy directional scans that pair extrema separated by more than the gap
// size. The scalar rate is the pooled pair count normalized by the recording
// duration.
//
// Filter coefficients for common configurations come from a precomputed
// table so published results stay bit-for-bit reproducible; other
// configurations fall back to an on-the-fly Butterworth design and report a
// categorized, suppressible warning.
//
// A single computation is pure and owns all its working buffers; the only
// shared state is the read-only coefficient table, so recordings can be
// processed concurrently without locking.
package swrr
