package lowpass

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
)

// State is a seeded exponential low-pass stage. It stores the last emitted
// value and folds each new sample into it. There is no empty state: a State
// is always constructed from an initial vector, so the first update already
// blends against real data.
type State struct {
	data []float64

	// weight holds (1-alpha) during a vector update. Keeping it on the
	// State makes steady-state updates allocation-free.
	weight []float64
}

// NewState returns a stage seeded with a copy of initial.
func NewState(initial []float64) (*State, error) {
	if len(initial) == 0 {
		return nil, ErrEmptyVector
	}

	data := make([]float64, len(initial))
	copy(data, initial)
	return &State{
		data:   data,
		weight: make([]float64, len(initial)),
	}, nil
}

// Dim returns the vector dimension fixed at construction.
func (s *State) Dim() int {
	return len(s.data)
}

// Data returns the last emitted value. The slice is owned by the State and
// must not be modified; it stays valid (and changes) across updates.
func (s *State) Data() []float64 {
	return s.data
}

// Update folds sample into the stage with a per-dimension alpha:
//
//	data = sample*alpha + data*(1-alpha)
//
// Sample and alpha must match the stage dimension and every alpha component
// must lie in [0, 1]. On error the stage is left unmodified.
func (s *State) Update(sample, alpha []float64) error {
	if len(sample) != len(s.data) || len(alpha) != len(s.data) {
		return ErrDimensionMismatch
	}
	for _, a := range alpha {
		if !validAlpha(a) {
			return ErrAlphaRange
		}
	}

	s.UpdateUnchecked(sample, alpha)
	return nil
}

// UpdateUnchecked is [State.Update] without validation.
func (s *State) UpdateUnchecked(sample, alpha []float64) {
	// weight = 1 - alpha
	vek.MulNumber_Into(s.weight, alpha, -1)
	vek.AddNumber_Inplace(s.weight, 1)

	// data = sample*alpha + previous*weight
	vecmath.MulBlockInPlace(s.weight, s.data)
	vecmath.MulBlock(s.data, sample, alpha)
	vek.Add_Inplace(s.data, s.weight)
}

// UpdateScalar folds sample into the stage with one alpha broadcast across
// all dimensions.
func (s *State) UpdateScalar(sample []float64, alpha float64) error {
	if len(sample) != len(s.data) {
		return ErrDimensionMismatch
	}
	if !validAlpha(alpha) {
		return ErrAlphaRange
	}

	s.UpdateScalarUnchecked(sample, alpha)
	return nil
}

// UpdateScalarUnchecked is [State.UpdateScalar] without validation.
func (s *State) UpdateScalarUnchecked(sample []float64, alpha float64) {
	for i, x := range sample {
		s.data[i] = x*alpha + s.data[i]*(1-alpha)
	}
}

// Clone returns an independent copy of the stage.
func (s *State) Clone() *State {
	c, _ := NewState(s.data)
	return c
}
