package indicators

// SMA calculates the Simple Moving Average for the given period.
// The first period-1 positions are NaN.
func SMA(values []float64, period int) []float64 {
	out := nans(len(values))
	if period < 1 || period > len(values) {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA calculates the Exponential Moving Average for the given period.
// The first value is seeded with the SMA of the first period closes.
func EMA(values []float64, period int) []float64 {
	out := nans(len(values))
	if period < 1 || period > len(values) {
		return out
	}

	multiplier := 2.0 / float64(period+1)

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	ema := seed / float64(period)
	out[period-1] = ema

	for i := period; i < len(values); i++ {
		ema = (values[i]-ema)*multiplier + ema
		out[i] = ema
	}
	return out
}
