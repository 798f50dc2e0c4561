package oneeuro

import (
	"errors"

	"github.com/viterin/vek"

	"github.com/cwbudde/algo-oneeuro/dsp/lowpass"
)

var (
	ErrEmptySample       = errors.New("oneeuro: sample must have at least one dimension")
	ErrDimensionMismatch = errors.New("oneeuro: sample dimension does not match state")
	ErrAlphaRange        = errors.New("oneeuro: derivative alpha must be in (0, 1]")
	ErrNonPositiveRate   = errors.New("oneeuro: rate must be positive")
	ErrNegativeMinCutoff = errors.New("oneeuro: minimum cutoff must be zero or positive")
	ErrNegativeBeta      = errors.New("oneeuro: beta must be zero or positive")
	ErrLengthMismatch    = errors.New("oneeuro: states and samples differ in length")
)

// State holds the per-stream data of the filter: the last raw sample, the
// low-pass stage for the signal, and the low-pass stage for its estimated
// derivative. The dimension is fixed at construction.
type State struct {
	raw        []float64
	filtered   *lowpass.State
	derivative *lowpass.State

	// scratch, sized to the dimension once so updates do not allocate
	dbuf []float64 // finite-difference derivative estimate
	abuf []float64 // cutoff, then per-dimension adaptive alpha
}

// NewState returns a state seeded with sample: the sample becomes both the
// initial raw and initial filtered value, and the derivative starts at zero.
func NewState(sample []float64) (*State, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	raw := make([]float64, len(sample))
	copy(raw, sample)

	filtered, err := lowpass.NewState(sample)
	if err != nil {
		return nil, err
	}
	derivative, err := lowpass.NewState(make([]float64, len(sample)))
	if err != nil {
		return nil, err
	}

	return &State{
		raw:        raw,
		filtered:   filtered,
		derivative: derivative,
		dbuf:       make([]float64, len(sample)),
		abuf:       make([]float64, len(sample)),
	}, nil
}

// Dim returns the vector dimension fixed at construction.
func (s *State) Dim() int {
	return len(s.raw)
}

// Data returns the current filtered value. The slice is owned by the State
// and must not be modified; it stays valid across updates.
func (s *State) Data() []float64 {
	return s.filtered.Data()
}

// Raw returns the last unfiltered sample. Owned by the State, read-only.
func (s *State) Raw() []float64 {
	return s.raw
}

// Derivative returns the current smoothed derivative estimate. Owned by the
// State, read-only.
func (s *State) Derivative() []float64 {
	return s.derivative.Data()
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c, _ := NewState(s.raw)
	copy(c.filtered.Data(), s.filtered.Data())
	copy(c.derivative.Data(), s.derivative.Data())
	return c
}

// Update advances the state by one sample.
//
// Rate is the instantaneous sampling frequency for this step (reciprocal of
// the elapsed time since the previous sample), which makes irregular
// sampling intervals a per-call concern. Dalpha is the smoothing factor of
// the derivative stage, fixed per (rate, dcutoff) pair and supplied by the
// owning [Filter].
//
// The update never rolls back: on success the raw/filtered/derivative
// triple is strictly derived from the previous triple and the new sample;
// on error nothing is modified.
func (s *State) Update(raw []float64, dalpha, rate, mincutoff, beta float64) error {
	switch {
	case len(raw) != len(s.raw):
		return ErrDimensionMismatch
	case !(dalpha > 0) || dalpha > 1:
		return ErrAlphaRange
	case !(rate > 0):
		return ErrNonPositiveRate
	case !(mincutoff >= 0):
		return ErrNegativeMinCutoff
	case !(beta >= 0):
		return ErrNegativeBeta
	}

	s.UpdateUnchecked(raw, dalpha, rate, mincutoff, beta)
	return nil
}

// UpdateUnchecked is [State.Update] without validation. The caller asserts
// that raw matches the state dimension, dalpha is in (0, 1], rate is
// positive, mincutoff is non-negative, and beta is non-negative. Violating
// any of these is undefined numerical behavior (NaN propagation), not a
// handled error.
func (s *State) UpdateUnchecked(raw []float64, dalpha, rate, mincutoff, beta float64) {
	// Finite-difference velocity estimate of the raw signal.
	vek.Sub_Into(s.dbuf, raw, s.raw)
	vek.MulNumber_Inplace(s.dbuf, rate)

	// Smooth the estimate with the fixed derivative-stage alpha.
	s.derivative.UpdateScalarUnchecked(s.dbuf, dalpha)

	// Adaptive cutoff, component-wise: mincutoff + beta*|derivative|.
	// Faster motion opens the cutoff and reduces smoothing lag; at rest the
	// cutoff settles at mincutoff, the maximum-smoothing regime.
	vek.Abs_Into(s.abuf, s.derivative.Data())
	vek.MulNumber_Inplace(s.abuf, beta)
	vek.AddNumber_Inplace(s.abuf, mincutoff)

	// Per-dimension smoothing factor for the signal stage.
	for i, cutoff := range s.abuf {
		s.abuf[i] = lowpass.AlphaUnchecked(rate, cutoff)
	}

	s.filtered.UpdateUnchecked(raw, s.abuf)

	copy(s.raw, raw)
}
