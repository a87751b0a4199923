package diagram

import "math"

// niceCeiling picks the polar/Cartesian scale maximum per spec.md §4.8: the
// nearest ceiling round number at or above max, rounding to the nearest 10
// below 50, the nearest 100 below 500, and the nearest 500 otherwise.
func niceCeiling(max float64) float64 {
	if max <= 0 {
		return 10
	}
	var step float64
	switch {
	case max < 50:
		step = 10
	case max < 500:
		step = 100
	default:
		step = 500
	}
	return math.Ceil(max/step) * step
}

// linTicks returns n+1 evenly spaced values from 0 to max inclusive.
func linTicks(max float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = max * float64(i) / float64(n)
	}
	return out
}
