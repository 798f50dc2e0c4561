package oneeuro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-oneeuro/dsp/lowpass"
	"github.com/cwbudde/algo-oneeuro/internal/testutil"
)

func TestNewStateSeeding(t *testing.T) {
	sample := []float64{3.25, -1.5}
	s, err := NewState(sample)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, sample, s.Raw())
	assert.Equal(t, sample, s.Data())
	assert.Equal(t, []float64{0, 0}, s.Derivative())

	// The state copies its seed.
	sample[0] = 99
	assert.Equal(t, 3.25, s.Raw()[0])
}

func TestNewStateEmpty(t *testing.T) {
	_, err := NewState(nil)
	require.ErrorIs(t, err, ErrEmptySample)
}

func TestUpdateValidation(t *testing.T) {
	dalpha := lowpass.AlphaUnchecked(60, 1)

	tests := []struct {
		name    string
		raw     []float64
		dalpha  float64
		rate    float64
		mincut  float64
		beta    float64
		wantErr error
	}{
		{"dimension mismatch", []float64{1}, dalpha, 60, 1, 0, ErrDimensionMismatch},
		{"zero dalpha", []float64{1, 1}, 0, 60, 1, 0, ErrAlphaRange},
		{"dalpha above one", []float64{1, 1}, 1.5, 60, 1, 0, ErrAlphaRange},
		{"nan dalpha", []float64{1, 1}, math.NaN(), 60, 1, 0, ErrAlphaRange},
		{"zero rate", []float64{1, 1}, dalpha, 0, 1, 0, ErrNonPositiveRate},
		{"negative rate", []float64{1, 1}, dalpha, -60, 1, 0, ErrNonPositiveRate},
		{"negative mincutoff", []float64{1, 1}, dalpha, 60, -1, 0, ErrNegativeMinCutoff},
		{"negative beta", []float64{1, 1}, dalpha, 60, 1, -0.1, ErrNegativeBeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewState([]float64{2, 4})
			require.NoError(t, err)

			err = s.Update(tt.raw, tt.dalpha, tt.rate, tt.mincut, tt.beta)
			require.ErrorIs(t, err, tt.wantErr)

			// A failed validation leaves all state unmodified.
			assert.Equal(t, []float64{2, 4}, s.Raw())
			assert.Equal(t, []float64{2, 4}, s.Data())
			assert.Equal(t, []float64{0, 0}, s.Derivative())
		})
	}
}

func TestUpdateZeroMinCutoffAllowed(t *testing.T) {
	// The state-level contract only requires mincutoff >= 0. With a zero
	// cutoff and no motion the signal stage freezes (alpha 0).
	s, err := NewState([]float64{1, 1})
	require.NoError(t, err)

	dalpha := lowpass.AlphaUnchecked(60, 1)
	require.NoError(t, s.Update([]float64{1, 1}, dalpha, 60, 0, 0))
	assert.Equal(t, []float64{1, 1}, s.Data())
	testutil.RequireFinite(t, s.Data())
}

func TestUpdateUncheckedMatchesChecked(t *testing.T) {
	a, err := NewState([]float64{0, 0})
	require.NoError(t, err)
	b := a.Clone()

	dalpha := lowpass.AlphaUnchecked(120, 1)
	noise := testutil.DeterministicNoise(9, 1, 40)
	for i := 0; i < len(noise); i += 2 {
		raw := []float64{noise[i], noise[i+1]}
		require.NoError(t, a.Update(raw, dalpha, 120, 1, 0.5))
		b.UpdateUnchecked(raw, dalpha, 120, 1, 0.5)
	}

	assert.Equal(t, a.Data(), b.Data())
	assert.Equal(t, a.Derivative(), b.Derivative())
	assert.Equal(t, a.Raw(), b.Raw())
}

func TestConstantInputConverges(t *testing.T) {
	target := []float64{10, -10}
	s, err := NewState([]float64{0, 0})
	require.NoError(t, err)

	dalpha := lowpass.AlphaUnchecked(60, 1)
	prevDist := math.Inf(1)
	prevDeriv := math.Inf(1)
	for _, raw := range testutil.ConstantStream(target, 600) {
		require.NoError(t, s.Update(raw, dalpha, 60, 1, 0.007))

		// Monotone up to the ulp floor: once the output saturates at the
		// target, successive steps may dither by a last-place unit.
		dist := math.Abs(s.Data()[0]-target[0]) + math.Abs(s.Data()[1]-target[1])
		assert.LessOrEqual(t, dist, prevDist+1e-12, "filtered output must approach the constant monotonically")
		prevDist = dist

		deriv := math.Abs(s.Derivative()[0]) + math.Abs(s.Derivative()[1])
		if deriv > 0 {
			assert.LessOrEqual(t, deriv, prevDeriv+1e-12)
		}
		prevDeriv = deriv
	}

	assert.InDelta(t, target[0], s.Data()[0], 1e-6)
	assert.InDelta(t, target[1], s.Data()[1], 1e-6)
	assert.InDelta(t, 0, s.Derivative()[0], 1e-6)
	assert.InDelta(t, 0, s.Derivative()[1], 1e-6)
}

func TestCutoffMonotonicInBeta(t *testing.T) {
	// Identical motion, growing beta: the cutoff grows with beta*|d|, so
	// the output tracks the raw step more closely (less smoothing lag).
	raw := []float64{10, 10}
	dalpha := lowpass.AlphaUnchecked(60, 1)

	prevLag := math.Inf(1)
	for _, beta := range []float64{0, 0.05, 0.5, 5} {
		s, err := NewState([]float64{0, 0})
		require.NoError(t, err)
		require.NoError(t, s.Update(raw, dalpha, 60, 1, beta))

		lag := math.Abs(raw[0] - s.Data()[0])
		assert.Less(t, lag, prevLag, "beta %v should reduce lag", beta)
		prevLag = lag
	}
}

func TestDerivativeTracksMotion(t *testing.T) {
	s, err := NewState([]float64{0, 0})
	require.NoError(t, err)

	// Constant velocity of +60 units/s in x at 60 Hz.
	dalpha := lowpass.AlphaUnchecked(60, 1)
	pos := 0.0
	for range 300 {
		pos += 1
		require.NoError(t, s.Update([]float64{pos, 0}, dalpha, 60, 1, 0))
	}

	assert.InDelta(t, 60, s.Derivative()[0], 1e-6)
	assert.InDelta(t, 0, s.Derivative()[1], 1e-12)
}

func TestCloneIndependent(t *testing.T) {
	s, err := NewState([]float64{1, 2})
	require.NoError(t, err)

	dalpha := lowpass.AlphaUnchecked(60, 1)
	require.NoError(t, s.Update([]float64{2, 3}, dalpha, 60, 1, 0.1))

	c := s.Clone()
	assert.Equal(t, s.Raw(), c.Raw())
	assert.Equal(t, s.Data(), c.Data())
	assert.Equal(t, s.Derivative(), c.Derivative())

	require.NoError(t, s.Update([]float64{5, 5}, dalpha, 60, 1, 0.1))
	assert.NotEqual(t, s.Data(), c.Data())
}
