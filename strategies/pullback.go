package strategies

import (
	"math"

	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

func init() {
	Register(&smaPullback{meta: meta{
		id:   "SMA_200_PULLBACK",
		name: "200 SMA Mean Reversion",
		desc: "Classic institutional swing strategy. Buys when a stock in a long-term uptrend (above 200 SMA) pulls back to touch the 200 SMA.",
		params: map[string]float64{
			"maPeriod": 200,
			"buffer":   0.01, // fraction of the MA
		},
	}})
	Register(&fibPullback{meta: meta{
		id:   "FIB_RETRACEMENT_PULLBACK",
		name: "Fibonacci Pullback (61.8%)",
		desc: "Trend-following strategy. Buys when price pulls back to the 61.8% Fibonacci level during a strong uptrend and shows a bullish reversal candle.",
		params: map[string]float64{
			"retracementLevel": 0.618,
			"trendLookback":    50,
		},
	}})
}

type smaPullback struct{ meta }

func (s *smaPullback) Indicators(candles []market.Candle) IndicatorSet {
	return IndicatorSet{
		"sma": indicators.SMA(market.Closes(candles), int(s.params["maPeriod"])),
	}
}

func (s *smaPullback) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	sma := ind["sma"]
	if i < 1 || !indicators.Defined(sma, i) {
		return None
	}

	close, prevClose, low := candles[i].Close, candles[i-1].Close, candles[i].Low
	withinBuffer := math.Abs(low-sma[i])/sma[i] <= s.params["buffer"]

	action := None
	// Trend is up and the dip tags the moving average.
	if close > sma[i] && withinBuffer && prevClose > sma[i] {
		action = Buy
	}
	if close < sma[i] {
		action = Sell
	}
	return action
}

type fibPullback struct{ meta }

func (s *fibPullback) Indicators(candles []market.Candle) IndicatorSet {
	lookback := int(s.params["trendLookback"])
	return IndicatorSet{
		"swingHigh": indicators.HighestHigh(market.Highs(candles), lookback),
		"swingLow":  indicators.LowestLow(market.Lows(candles), lookback),
	}
}

func (s *fibPullback) Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action {
	highs, lows := ind["swingHigh"], ind["swingLow"]
	if !indicators.Defined(highs, i) || !indicators.Defined(lows, i) {
		return None
	}
	swingHigh, swingLow := highs[i], lows[i]
	if swingHigh <= swingLow {
		return None
	}

	rng := swingHigh - swingLow
	fibLevel := swingHigh - rng*s.params["retracementLevel"]
	buffer := rng * 0.02

	low, close := candles[i].Low, candles[i].Close

	action := None
	// Low tags the retracement zone but the close holds above it.
	if low <= fibLevel+buffer && low >= fibLevel-buffer && close > low {
		action = Buy
	}
	if close < swingLow {
		action = Sell
	}
	return action
}
