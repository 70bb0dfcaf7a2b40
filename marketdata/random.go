package marketdata

import (
	"math/rand"
	"time"

	"github.com/rustyeddy/papertrade/market"
)

// RandomWalkCandles generates a deterministic synthetic daily candle series
// for demos and tests. The same seed always produces the same series.
func RandomWalkCandles(n int, startPrice float64, seed int64) []market.Candle {
	r := rand.New(rand.NewSource(seed))
	price := startPrice
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	candles := make([]market.Candle, 0, n)
	for i := 0; i < n; i++ {
		open := price
		ret := (r.Float64() - 0.48) * 0.03 // slight upward drift
		close := open * (1 + ret)
		high := maxF(open, close) * (1 + r.Float64()*0.01)
		low := minF(open, close) * (1 - r.Float64()*0.01)
		volume := 100_000 + r.Float64()*400_000

		candles = append(candles, market.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		})
		price = close
	}
	return candles
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
