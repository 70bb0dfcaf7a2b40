package strategies

import (
	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&keltnerBreakout{meta: meta{
		id:   "KELTNER_BREAKOUT",
		name: "Keltner Channel Breakout",
		desc: "Uses ATR for volatility. Buys when price closes above the upper Keltner Channel, often used for \"volatility expansion\" trades.",
		params: map[string]float64{
			"emaPeriod":     20,
			"atrMultiplier": 2,
		},
	}})
	Register(&ttmSqueeze{meta: meta{
		id:   "TTM_SQUEEZE",
		name: "TTM Squeeze",
		desc: "Identifies periods of consolidation (Squeeze) and trades the explosive move when Bollinger Bands go inside Keltner Channels.",
		params: map[string]float64{
			"bbPeriod": 20,
			"bbStd":    2.0,
			"kcPeriod": 20,
			"kcMult":   1.5,
		},
	}})
}

// keltnerBreakout trades closes through the upper EMA+k*ATR channel and
// exits when price loses the channel midline.
type keltnerBreakout struct{ meta }

func (s *keltnerBreakout) Indicators(candles []market.Candle) IndicatorSet {
	period := int(s.params["emaPeriod"])
	return IndicatorSet{
		"ema": indicators.EMA(market.Closes(candles), period),
		"atr": indicators.ATR(candles, period),
	}
}

func (s *keltnerBreakout) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	ema, atr := ind["ema"], ind["atr"]
	if i < 1 || !indicators.Defined(ema, i) || !indicators.Defined(atr, i) {
		return None
	}

	upper := ema[i] + s.params["atrMultiplier"]*atr[i]
	close, prevClose := candles[i].Close, candles[i-1].Close
	switch {
	case close > upper && prevClose <= upper:
		return Buy
	case close < ema[i]:
		return Sell
	}
	return None
}

// ttmSqueeze is the simplified momentum form: the Bollinger series are
// computed for the report, the trade trigger is the Keltner channel.
type ttmSqueeze struct{ meta }

func (s *ttmSqueeze) Indicators(candles []market.Candle) IndicatorSet {
	closes := market.Closes(candles)
	kcPeriod := int(s.params["kcPeriod"])
	upper, middle, lower := indicators.Bollinger(closes, int(s.params["bbPeriod"]), s.params["bbStd"])
	return IndicatorSet{
		"bbUpper":  upper,
		"bbMiddle": middle,
		"bbLower":  lower,
		"ema":      indicators.EMA(closes, kcPeriod),
		"atr":      indicators.ATR(candles, kcPeriod),
	}
}

func (s *ttmSqueeze) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	ema, atr, bbUpper := ind["ema"], ind["atr"], ind["bbUpper"]
	if i < 1 || !indicators.Defined(ema, i) || !indicators.Defined(atr, i) ||
		!indicators.Defined(bbUpper, i) {
		return None
	}

	kcUpper := ema[i] + s.params["kcMult"]*atr[i]
	close, prevClose := candles[i].Close, candles[i-1].Close
	switch {
	case close > kcUpper && prevClose <= kcUpper:
		return Buy
	case close < ema[i]:
		return Sell
	}
	return None
}
