package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&macdCross{meta: meta{
		id:   "MACD_CROSSOVER",
		name: "MACD Signal Cross",
		desc: "Momentum strategy. Buys when the MACD line crosses above the Signal line. Sells when MACD crosses below Signal.",
		params: map[string]float64{
			"fastPeriod":   12,
			"slowPeriod":   26,
			"signalPeriod": 9,
		},
	}})
}

type macdCross struct{ meta }

func (s *macdCross) Indicators(candles []market.Candle) IndicatorSet {
	line, sig, hist := indicators.MACD(
		market.Closes(candles),
		int(s.params["fastPeriod"]),
		int(s.params["slowPeriod"]),
		int(s.params["signalPeriod"]),
	)
	return IndicatorSet{"macd": line, "signal": sig, "histogram": hist}
}

func (s *macdCross) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	line, sig := ind["macd"], ind["signal"]
	if i < 1 || !indicators.Defined(line, i-1) || !indicators.Defined(sig, i-1) ||
		!indicators.Defined(line, i) || !indicators.Defined(sig, i) {
		return None
	}

	switch {
	case line[i-1] <= sig[i-1] && line[i] > sig[i]:
		return Buy
	case line[i-1] >= sig[i-1] && line[i] < sig[i]:
		return Sell
	}
	return None
}
