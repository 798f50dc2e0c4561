package lowpass

import (
	"errors"
	"math"
)

var (
	ErrNonPositiveRate   = errors.New("lowpass: rate must be positive")
	ErrNonPositiveCutoff = errors.New("lowpass: cutoff must be positive")
	ErrNonFiniteAlpha    = errors.New("lowpass: computed alpha is not finite")
	ErrAlphaRange        = errors.New("lowpass: alpha must be in [0, 1]")
	ErrDimensionMismatch = errors.New("lowpass: vector dimensions differ")
	ErrEmptyVector       = errors.New("lowpass: vector must have at least one dimension")
)

// Alpha computes the exponential smoothing factor for a sampling rate and a
// cutoff frequency:
//
//	alpha = 1 / (1 + rate/(2*pi*cutoff))
//
// The result lies in (0, 1]: an infinite cutoff yields 1 (no smoothing),
// and the factor approaches 0 as the cutoff approaches 0 (maximal
// smoothing). Rate is the sampling frequency, i.e. the reciprocal of the
// elapsed time since the previous sample.
func Alpha(rate, cutoff float64) (float64, error) {
	if !(rate > 0) {
		return 0, ErrNonPositiveRate
	}
	if !(cutoff > 0) {
		return 0, ErrNonPositiveCutoff
	}

	alpha := AlphaUnchecked(rate, cutoff)
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, ErrNonFiniteAlpha
	}
	return alpha, nil
}

// AlphaUnchecked is [Alpha] without validation. The caller asserts that
// rate and cutoff are positive; violating that propagates NaN or Inf into
// downstream state.
func AlphaUnchecked(rate, cutoff float64) float64 {
	return 1 / (1 + rate/(2*math.Pi*cutoff))
}
