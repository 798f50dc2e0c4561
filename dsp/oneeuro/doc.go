// Package oneeuro implements the One Euro filter, an adaptive exponential
// smoother for noisy, irregularly-timestamped multi-dimensional samples
// (pointer coordinates, motion-tracker positions, and similar streams).
//
// The filter suppresses jitter while the signal moves slowly and reduces
// lag while it moves fast, by raising the low-pass cutoff frequency with
// the smoothed signal derivative.
//
//   - [Config]: tunable parameters with validated defaults
//   - [Filter]: read-mostly parameter holder driving updates
//   - [State]:  per-stream mutable data (raw, filtered, derivative)
//
// One Filter may drive many independent States, one per tracked signal.
// A Filter is safe to share across goroutines between setter calls; each
// State must be updated by at most one caller at a time.
package oneeuro
