package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&bollingerBreakout{meta: meta{
		id:   "BOLLINGER_BREAKOUT",
		name: "Bollinger Band Breakout",
		desc: "Volatility breakout strategy. Buys when price closes above the Upper Bollinger Band, indicating strong upward momentum.",
		params: map[string]float64{
			"period": 20,
			"stdDev": 2,
		},
	}})
}

type bollingerBreakout struct{ meta }

func (s *bollingerBreakout) Indicators(candles []market.Candle) IndicatorSet {
	upper, middle, lower := indicators.Bollinger(
		market.Closes(candles), int(s.params["period"]), s.params["stdDev"])
	return IndicatorSet{"bbUpper": upper, "bbMiddle": middle, "bbLower": lower}
}

// Evaluate compares against the previous bar's bands: entry when the close
// pushes through yesterday's upper band, exit when it loses the middle band.
func (s *bollingerBreakout) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	upper, middle := ind["bbUpper"], ind["bbMiddle"]
	if i < 1 || !indicators.Defined(upper, i-1) || !indicators.Defined(middle, i-1) {
		return None
	}

	prevClose, close := candles[i-1].Close, candles[i].Close
	switch {
	case close > upper[i-1] && prevClose <= upper[i-1]:
		return Buy
	case close < middle[i-1] && prevClose >= middle[i-1]:
		return Sell
	}
	return None
}
