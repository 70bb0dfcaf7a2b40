package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&maCross{
		meta: meta{
			id:   "SMA_GOLDEN_CROSS",
			name: "SMA Golden Cross",
			desc: "A classic long-term trend following strategy. Buys when the 50-day SMA crosses above the 200-day SMA (Golden Cross) and Sells when it crosses below (Death Cross).",
			params: map[string]float64{
				"shortPeriod": 50,
				"longPeriod":  200,
			},
		},
		avg: indicators.SMA,
	})
	Register(&maCross{
		meta: meta{
			id:   "EMA_CROSSOVER",
			name: "EMA Crossover (9/21)",
			desc: "A faster moving average strategy for capturing medium-term trends. Buys when the 9 EMA crosses above the 21 EMA.",
			params: map[string]float64{
				"shortPeriod": 9,
				"longPeriod":  21,
			},
		},
		avg: indicators.EMA,
	})
}

// maCross implements both moving-average crossover entries; only the
// averaging function differs between the SMA and EMA catalog entries.
type maCross struct {
	meta
	avg func([]float64, int) []float64
}

func (s *maCross) Indicators(candles []market.Candle) IndicatorSet {
	closes := market.Closes(candles)
	return IndicatorSet{
		"fast": s.avg(closes, int(s.params["shortPeriod"])),
		"slow": s.avg(closes, int(s.params["longPeriod"])),
	}
}

func (s *maCross) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	fast, slow := ind["fast"], ind["slow"]
	if i < 1 || !indicators.Defined(fast, i-1) || !indicators.Defined(slow, i-1) ||
		!indicators.Defined(fast, i) || !indicators.Defined(slow, i) {
		return None
	}

	switch {
	case fast[i-1] <= slow[i-1] && fast[i] > slow[i]:
		return Buy
	case fast[i-1] >= slow[i-1] && fast[i] < slow[i]:
		return Sell
	}
	return None
}
