package indicators

import (
	"math"

	"github.com/rustyeddy/papertrade/market"
)

// ATR calculates Wilder's Average True Range. The first defined value appears
// at index period (true ranges exist from index 1 on).
func ATR(candles []market.Candle, period int) []float64 {
	out := nans(len(candles))
	if period < 1 || period >= len(candles) {
		return out
	}

	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += trueRange(candles[i], candles[i-1])
	}
	atr := sum / float64(period)
	out[period] = atr

	p := float64(period)
	for i := period + 1; i < len(candles); i++ {
		atr = (atr*(p-1) + trueRange(candles[i], candles[i-1])) / p
		out[i] = atr
	}
	return out
}

func trueRange(c, prev market.Candle) float64 {
	hl := c.High - c.Low
	hc := math.Abs(c.High - prev.Close)
	lc := math.Abs(c.Low - prev.Close)
	return math.Max(hl, math.Max(hc, lc))
}
