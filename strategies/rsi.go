package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&rsiReversal{meta: meta{
		id:   "RSI_REVERSAL",
		name: "RSI Reversal (30/70)",
		desc: "Mean reversion strategy. Buys when RSI dips below 30 (Oversold) and crosses back up. Sells when RSI goes above 70 (Overbought).",
		params: map[string]float64{
			"period":     14,
			"overbought": 70,
			"oversold":   30,
		},
	}})
}

type rsiReversal struct{ meta }

func (s *rsiReversal) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{
		"rsi": indicators.RSI(market.Closes(candles), int(s.params["period"])),
	}
}

func (s *rsiReversal) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	rsi := ind["rsi"]
	if i < 1 || !indicators.Defined(rsi, i-1) || !indicators.Defined(rsi, i) {
		return None
	}

	oversold, overbought := s.params["oversold"], s.params["overbought"]
	switch {
	case rsi[i-1] < oversold && rsi[i] >= oversold:
		return Buy
	case rsi[i-1] > overbought && rsi[i] <= overbought:
		return Sell
	}
	return None
}
