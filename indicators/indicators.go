// Package indicators provides technical analysis series for trading.
//
// Every function returns slices aligned index-for-index with its input.
// Positions inside an indicator's warm-up period hold NaN; callers must treat
// NaN as "no value" and never read it as zero. A period shorter than 1 or
// longer than the series yields a fully undefined (all-NaN) result.
package indicators

import "math"

// Defined reports whether the series holds a value at index i.
func Defined(series []float64, i int) bool {
	return i >= 0 && i < len(series) && !math.IsNaN(series[i])
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
