package indicators

// HighestHigh returns, at each index, the maximum of the previous period
// values, excluding the current bar. Defined from index period.
func HighestHigh(values []float64, period int) []float64 {
	out := nans(len(values))
	if period < 1 {
		return out
	}
	for i := period; i < len(values); i++ {
		max := values[i-period]
		for j := i - period + 1; j < i; j++ {
			if values[j] > max {
				max = values[j]
			}
		}
		out[i] = max
	}
	return out
}

// LowestLow returns, at each index, the minimum of the previous period
// values, excluding the current bar. Defined from index period.
func LowestLow(values []float64, period int) []float64 {
	out := nans(len(values))
	if period < 1 {
		return out
	}
	for i := period; i < len(values); i++ {
		min := values[i-period]
		for j := i - period + 1; j < i; j++ {
			if values[j] < min {
				min = values[j]
			}
		}
		out[i] = min
	}
	return out
}
