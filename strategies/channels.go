package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&donchianBreakout{meta: meta{
		id:   "DONCHIAN_BREAKOUT",
		name: "Donchian Channel (4-Week)",
		desc: "The \"Turtle\" strategy. Buys when price exceeds the highest high of the last 20 periods. Sells when it falls below the 10-period low.",
		params: map[string]float64{
			"entryPeriod": 20,
			"exitPeriod":  10,
		},
	}})
	Register(&volumeBreakout{meta: meta{
		id:   "VOLUME_BREAKOUT",
		name: "High Volume Breakout",
		desc: "Confirmation strategy. Buys only if a price breakout (new 20-day high) is accompanied by volume that is 2x the average.",
		params: map[string]float64{
			"volumeMultiplier": 2,
			"breakoutPeriod":   20,
			"exitPeriod":       10,
		},
	}})
}

type donchianBreakout struct{ meta }

func (s *donchianBreakout) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{
		"entryHigh": indicators.HighestHigh(market.Highs(candles), int(s.params["entryPeriod"])),
		"exitLow":   indicators.LowestLow(market.Lows(candles), int(s.params["exitPeriod"])),
	}
}

func (s *donchianBreakout) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	entryHigh, exitLow := ind["entryHigh"], ind["exitLow"]
	if !indicators.Defined(entryHigh, i) || !indicators.Defined(exitLow, i) {
		return None
	}

	close := candles[i].Close
	action := None
	if close > entryHigh[i] {
		action = Buy
	}
	if close < exitLow[i] {
		action = Sell
	}
	return action
}

// volumeBreakout confirms a new N-day high with volume above a multiple of
// the rolling volume average, and trails out on the exit-period low.
type volumeBreakout struct{ meta }

func (s *volumeBreakout) Indicators(candles []market.Candle) IndicatorSet {
	period := int(s.params["breakoutPeriod"])
	return IndicatorSet{
		"breakoutHigh": indicators.HighestHigh(market.Highs(candles), period),
		"exitLow":      indicators.LowestLow(market.Lows(candles), int(s.params["exitPeriod"])),
		"volSMA":       indicators.SMA(market.Volumes(candles), period),
	}
}

func (s *volumeBreakout) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	breakoutHigh, exitLow, volSMA := ind["breakoutHigh"], ind["exitLow"], ind["volSMA"]
	if i < 1 || !indicators.Defined(breakoutHigh, i) || !indicators.Defined(exitLow, i) ||
		!indicators.Defined(volSMA, i-1) {
		return None
	}

	c := candles[i]
	action := None
	if c.High > breakoutHigh[i] && c.Volume > volSMA[i-1]*s.params["volumeMultiplier"] {
		action = Buy
	}
	if c.Close < exitLow[i] {
		action = Sell
	}
	return action
}
