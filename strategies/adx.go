package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&adxTrend{meta: meta{
		id:   "ADX_TREND_FOLLOWING",
		name: "ADX Trend Strength",
		desc: "Ensures you only trade in strong trends. Buys when ADX > 25 (strong trend) and +DI is above -DI.",
		params: map[string]float64{
			"adxPeriod": 14,
			"threshold": 25,
		},
	}})
}

type adxTrend struct{ meta }

func (s *adxTrend) Indicators(candles []market.Candle) IndicatorSet {
	adx, plusDI, minusDI := indicators.ADX(candles, int(s.params["adxPeriod"]))
	return IndicatorSet{"adx": adx, "plusDI": plusDI, "minusDI": minusDI}
}

// Evaluate takes DI crosses only while ADX confirms a strong trend.
func (s *adxTrend) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	adx, pdi, mdi := ind["adx"], ind["plusDI"], ind["minusDI"]
	if i < 1 || !indicators.Defined(adx, i) ||
		!indicators.Defined(pdi, i) || !indicators.Defined(mdi, i) ||
		!indicators.Defined(pdi, i-1) || !indicators.Defined(mdi, i-1) {
		return None
	}
	if adx[i] <= s.params["threshold"] {
		return None
	}

	switch {
	case pdi[i] > mdi[i] && pdi[i-1] <= mdi[i-1]:
		return Buy
	case pdi[i] < mdi[i] && pdi[i-1] >= mdi[i-1]:
		return Sell
	}
	return None
}
