package lowpass

// Filter performs one exponential moving-average step:
//
//	current*alpha + previous*(1-alpha)
//
// Alpha must lie in [0, 1]; both endpoints are legal terminal behaviors for
// this primitive (0 keeps the previous value, 1 takes the new sample).
func Filter(current, previous, alpha float64) (float64, error) {
	if !validAlpha(alpha) {
		return 0, ErrAlphaRange
	}
	return FilterUnchecked(current, previous, alpha), nil
}

// FilterUnchecked is [Filter] without the alpha range check.
func FilterUnchecked(current, previous, alpha float64) float64 {
	return current*alpha + previous*(1-alpha)
}

// FilterInto applies the EMA step component-wise with a per-dimension alpha,
// writing the result into dst. All four slices must share one length, and
// every alpha component must lie in [0, 1]. dst may alias current or
// previous.
func FilterInto(dst, current, previous, alpha []float64) error {
	if len(dst) == 0 {
		return ErrEmptyVector
	}
	if len(current) != len(dst) || len(previous) != len(dst) || len(alpha) != len(dst) {
		return ErrDimensionMismatch
	}
	for _, a := range alpha {
		if !validAlpha(a) {
			return ErrAlphaRange
		}
	}

	FilterIntoUnchecked(dst, current, previous, alpha)
	return nil
}

// FilterIntoUnchecked is [FilterInto] without validation.
func FilterIntoUnchecked(dst, current, previous, alpha []float64) {
	for i, a := range alpha {
		dst[i] = current[i]*a + previous[i]*(1-a)
	}
}

// validAlpha also rejects NaN: both comparisons fail for it.
func validAlpha(a float64) bool {
	return a >= 0 && a <= 1
}
