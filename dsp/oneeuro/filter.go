package oneeuro

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-oneeuro/dsp/lowpass"
)

var (
	ErrNonPositiveMinCutoff = errors.New("oneeuro: minimum cutoff must be positive")
	ErrNonPositiveDCutoff   = errors.New("oneeuro: derivative cutoff must be positive")
)

// Config enumerates the tunable filter parameters.
//
// Rate is the sampling frequency assumed by [Filter.Filter]; MinCutoff is
// the cutoff frequency at rest (lower = more smoothing, more lag); Beta
// scales the cutoff with the estimated signal speed; DCutoff is the cutoff
// of the derivative low-pass stage, conventionally left at 1.
type Config struct {
	Rate      float64
	MinCutoff float64
	Beta      float64
	DCutoff   float64
}

// DefaultConfig returns the default parameters: unit rate and cutoffs with
// beta 0. With beta 0 the filter behaves as a plain fixed low-pass until
// configured otherwise.
func DefaultConfig() Config {
	return Config{
		Rate:      1,
		MinCutoff: 1,
		Beta:      0,
		DCutoff:   1,
	}
}

// Validate checks the configuration as a unit.
func (c Config) Validate() error {
	switch {
	case !(c.Rate > 0):
		return ErrNonPositiveRate
	case !(c.MinCutoff > 0):
		return ErrNonPositiveMinCutoff
	case !(c.Beta >= 0):
		return ErrNegativeBeta
	case !(c.DCutoff > 0):
		return ErrNonPositiveDCutoff
	}
	return nil
}

// Filter owns the tunable parameters and drives [State] updates. It keeps
// the derivative-stage smoothing factor precomputed: that factor depends
// only on (rate, dcutoff) and is reused across every update, unlike the
// signal-stage factor, which depends on the live derivative and is
// recomputed each call.
//
// A Filter is read-mostly: it may be shared across goroutines updating
// independent States, as long as no setter runs concurrently.
type Filter struct {
	rate      float64
	mincutoff float64
	beta      float64
	dcutoff   float64

	dalpha float64 // smoothing factor of the derivative stage
}

// New returns a Filter for the given configuration. No partially-valid
// Filter is observable: any violated invariant fails construction,
// including a (rate, dcutoff) pair whose derivative-stage smoothing factor
// degenerates out of (0, 1].
func New(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dalpha, err := derivativeAlpha(cfg.Rate, cfg.DCutoff)
	if err != nil {
		return nil, err
	}

	return &Filter{
		rate:      cfg.Rate,
		mincutoff: cfg.MinCutoff,
		beta:      cfg.Beta,
		dcutoff:   cfg.DCutoff,
		dalpha:    dalpha,
	}, nil
}

// derivativeAlpha computes the derivative-stage smoothing factor on the
// checked path, so a misconfiguration (an infinite rate collapsing the
// factor to 0, or a non-finite result) is rejected where it enters rather
// than on the first filter call.
func derivativeAlpha(rate, dcutoff float64) (float64, error) {
	alpha, err := lowpass.Alpha(rate, dcutoff)
	if err != nil {
		return 0, fmt.Errorf("oneeuro: derivative stage: %w", err)
	}
	if alpha <= 0 {
		return 0, ErrAlphaRange
	}
	return alpha, nil
}

// NewDefault returns a Filter with [DefaultConfig] parameters.
func NewDefault() *Filter {
	f, _ := New(DefaultConfig())
	return f
}

// Rate returns the configured sampling frequency.
func (f *Filter) Rate() float64 { return f.rate }

// MinCutoff returns the minimum cutoff frequency.
func (f *Filter) MinCutoff() float64 { return f.mincutoff }

// Beta returns the cutoff slope.
func (f *Filter) Beta() float64 { return f.beta }

// DCutoff returns the derivative-stage cutoff frequency.
func (f *Filter) DCutoff() float64 { return f.dcutoff }

// Config returns a snapshot of the current parameters.
func (f *Filter) Config() Config {
	return Config{
		Rate:      f.rate,
		MinCutoff: f.mincutoff,
		Beta:      f.beta,
		DCutoff:   f.dcutoff,
	}
}

// SetRate sets the sampling frequency and recomputes the derivative-stage
// smoothing factor.
func (f *Filter) SetRate(value float64) error {
	if !(value > 0) {
		return ErrNonPositiveRate
	}
	dalpha, err := derivativeAlpha(value, f.dcutoff)
	if err != nil {
		return err
	}
	f.rate = value
	f.dalpha = dalpha
	return nil
}

// SetMinCutoff sets the minimum cutoff frequency.
func (f *Filter) SetMinCutoff(value float64) error {
	if !(value > 0) {
		return ErrNonPositiveMinCutoff
	}
	f.mincutoff = value
	return nil
}

// SetBeta sets the cutoff slope.
func (f *Filter) SetBeta(value float64) error {
	if !(value >= 0) {
		return ErrNegativeBeta
	}
	f.beta = value
	return nil
}

// SetDCutoff sets the derivative-stage cutoff and recomputes the
// derivative-stage smoothing factor.
func (f *Filter) SetDCutoff(value float64) error {
	if !(value > 0) {
		return ErrNonPositiveDCutoff
	}
	dalpha, err := derivativeAlpha(f.rate, value)
	if err != nil {
		return err
	}
	f.dcutoff = value
	f.dalpha = dalpha
	return nil
}

// Filter advances state by one raw sample at the configured rate.
func (f *Filter) Filter(state *State, raw []float64) error {
	return state.Update(raw, f.dalpha, f.rate, f.mincutoff, f.beta)
}

// FilterRate advances state by one raw sample at an explicit rate, the
// reciprocal of the elapsed time since the previous sample for that state.
// Use this for variable-framerate streams; the derivative-stage smoothing
// factor is recomputed for the supplied rate.
func (f *Filter) FilterRate(state *State, raw []float64, rate float64) error {
	if !(rate > 0) {
		return ErrNonPositiveRate
	}
	return state.Update(raw, lowpass.AlphaUnchecked(rate, f.dcutoff), rate, f.mincutoff, f.beta)
}

// FilterSlice advances many independent state/sample pairs with the same
// parameters at the configured rate. Pairs do not interact; iteration order
// cannot affect results. All dimensions are validated before any state is
// touched, so a failed call leaves every state unmodified.
func (f *Filter) FilterSlice(states []*State, raws [][]float64) error {
	if len(states) != len(raws) {
		return ErrLengthMismatch
	}
	for i, s := range states {
		if len(raws[i]) != s.Dim() {
			return fmt.Errorf("oneeuro: pair %d: %w", i, ErrDimensionMismatch)
		}
	}

	for i, s := range states {
		s.UpdateUnchecked(raws[i], f.dalpha, f.rate, f.mincutoff, f.beta)
	}
	return nil
}
