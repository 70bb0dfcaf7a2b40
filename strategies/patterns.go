package strategies

import (
	"github.com/rustyeddy/papertrade/market"
)

// Price-action strategies: no indicator series, rules match the last 2-3
// candles directly.

func init() {
	Register(&threeWhiteSoldiers{meta: meta{
		id:     "THREE_WHITE_SOLDIERS",
		name:   "Three White Soldiers",
		desc:   "Candlestick pattern. Buys after 3 consecutive green candles with higher closes, indicating a strong reversal/continuation.",
		params: map[string]float64{},
	}})
	Register(&gapAndGo{meta: meta{
		id:   "GAP_AND_GO",
		name: "Gap Up Strategy",
		desc: "Price Action. Buys if the opening price is significantly higher (>1%) than previous close and the first candle is green.",
		params: map[string]float64{
			"gapThreshold": 1.0, // percent
		},
	}})
	Register(&insideBar{meta: meta{
		id:     "INSIDE_BAR",
		name:   "Inside Bar Breakout",
		desc:   "Price Action. Buys when price breaks out of the high of a previous \"Inside Bar\" (a candle fully contained within the previous one).",
		params: map[string]float64{},
	}})
}

type threeWhiteSoldiers struct{ meta }

func (s *threeWhiteSoldiers) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{}
}

func (s *threeWhiteSoldiers) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	if i < 3 {
		return None
	}
	c1, c2, c3 := candles[i], candles[i-1], candles[i-2]

	action := None
	if c1.Bullish() && c2.Bullish() && c3.Bullish() &&
		c1.Close > c2.Close && c2.Close > c3.Close {
		action = Buy
	}
	// Two consecutive down closes end the run.
	if c1.Bearish() && c2.Bearish() {
		action = Sell
	}
	return action
}

type gapAndGo struct{ meta }

func (s *gapAndGo) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{}
}

func (s *gapAndGo) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	if i < 1 {
		return None
	}
	prevClose := candles[i-1].Close
	open, close := candles[i].Open, candles[i].Close

	gapPct := (open - prevClose) / prevClose * 100

	action := None
	if gapPct > s.params["gapThreshold"] && close > open {
		action = Buy
	}
	if close < prevClose {
		action = Sell
	}
	return action
}

type insideBar struct{ meta }

func (s *insideBar) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{}
}

func (s *insideBar) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	if i < 2 {
		return None
	}
	inside, mother := candles[i-1], candles[i-2]
	price := candles[i].Close

	action := None
	if inside.High < mother.High && inside.Low > mother.Low && price > inside.High {
		action = Buy
	}
	// Breakdown through the prior bar's low exits regardless of pattern.
	if price < inside.Low {
		action = Sell
	}
	return action
}
