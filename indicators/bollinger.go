package indicators

import "math"

// Bollinger calculates Bollinger Bands: an SMA middle band with upper and
// lower bands stdDev population standard deviations away.
func Bollinger(values []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	n := len(values)
	upper, lower = nans(n), nans(n)
	middle = SMA(values, period)
	if period < 1 || period > n {
		return upper, middle, lower
	}

	for i := period - 1; i < n; i++ {
		mean := middle[i]
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = mean + stdDev*sd
		lower[i] = mean - stdDev*sd
	}
	return upper, middle, lower
}
