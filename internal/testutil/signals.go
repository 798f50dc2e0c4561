package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Trajectory is a deterministic 2-D pointer-like path with per-sample
// timestamps. Origin holds the clean positions, Noisy the jittered ones.
type Trajectory struct {
	Timestamps []float64
	Origin     [][]float64
	Noisy      [][]float64
}

// NoisyTrajectory generates a smooth 2-D path sampled at nominalRate with
// slightly jittered timestamps and additive position noise. The same seed
// always yields the same trajectory.
func NoisyTrajectory(seed int64, nominalRate, noiseAmplitude float64, length int) Trajectory {
	tr := Trajectory{
		Timestamps: make([]float64, length),
		Origin:     make([][]float64, length),
		Noisy:      make([][]float64, length),
	}

	rng := rand.New(rand.NewSource(seed))
	dt := 1 / nominalRate

	t := 0.0
	for i := range tr.Timestamps {
		tr.Timestamps[i] = t
		// Jitter the next interval by up to 20% to exercise the
		// variable-rate path.
		t += dt * (1 + 0.2*(rng.Float64()*2-1))

		x := math.Sin(2 * math.Pi * 0.5 * tr.Timestamps[i])
		y := math.Cos(2 * math.Pi * 0.3 * tr.Timestamps[i])
		tr.Origin[i] = []float64{x, y}
		tr.Noisy[i] = []float64{
			x + (rng.Float64()*2-1)*noiseAmplitude,
			y + (rng.Float64()*2-1)*noiseAmplitude,
		}
	}
	return tr
}

// ConstantStream returns length copies of the same D-dimensional sample.
func ConstantStream(sample []float64, length int) [][]float64 {
	out := make([][]float64, length)
	for i := range out {
		s := make([]float64, len(sample))
		copy(s, sample)
		out[i] = s
	}
	return out
}
