package strategies

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/papertrade/market"
)

var catalogIDs = []string{
	"ADX_TREND_FOLLOWING",
	"BOLLINGER_BREAKOUT",
	"DONCHIAN_BREAKOUT",
	"EMA_CROSSOVER",
	"FIB_RETRACEMENT_PULLBACK",
	"GAP_AND_GO",
	"INSIDE_BAR",
	"KELTNER_BREAKOUT",
	"MACD_CROSSOVER",
	"RSI_REVERSAL",
	"SMA_200_PULLBACK",
	"SMA_GOLDEN_CROSS",
	"THREE_WHITE_SOLDIERS",
	"TTM_SQUEEZE",
	"VOLUME_BREAKOUT",
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	list := List()
	assert.Len(t, list, len(catalogIDs))
	for i, s := range list {
		assert.Equal(t, catalogIDs[i], s.ID(), "catalog must be sorted by id")
		assert.NotEmpty(t, s.Name())
		assert.NotEmpty(t, s.Description())
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	s, err := Get("RSI_REVERSAL")
	assert.NoError(t, err)
	assert.Equal(t, "RSI_REVERSAL", s.ID())

	_, err = Get("NO_SUCH_STRATEGY")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NONE", None.String())
	assert.Equal(t, "BUY", Buy.String())
	assert.Equal(t, "SELL", Sell.String())
}

func candlesFromCloses(closes []float64) []market.Candle {
	out := make([]market.Candle, len(closes))
	for i, c := range closes {
		out[i] = market.Candle{
			Time:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   c,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 1000,
		}
	}
	return out
}

func TestMACrossEvaluate(t *testing.T) {
	t.Parallel()

	s, err := Get("EMA_CROSSOVER")
	assert.NoError(t, err)

	// Drive Evaluate with hand-built series so the cross bar is exact.
	ind := IndicatorSet{
		"fast": {math.NaN(), 9, 10, 11, 10, 9},
		"slow": {math.NaN(), 10, 10, 10, 10, 10},
	}
	candles := candlesFromCloses(make([]float64, 6))

	assert.Equal(t, None, s.Evaluate(candles, ind, 0))
	assert.Equal(t, None, s.Evaluate(candles, ind, 1)) // prior bar NaN
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 2))  // fast crosses up
	assert.Equal(t, None, s.Evaluate(candles, ind, 3)) // already above
	assert.Equal(t, None, s.Evaluate(candles, ind, 4)) // touch, no cross
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 5)) // fast crosses down
}

func TestRSIReversalEvaluate(t *testing.T) {
	t.Parallel()

	s, err := Get("RSI_REVERSAL")
	assert.NoError(t, err)

	ind := IndicatorSet{
		"rsi": {math.NaN(), 25, 35, 50, 75, 65},
	}
	candles := candlesFromCloses(make([]float64, 6))

	assert.Equal(t, None, s.Evaluate(candles, ind, 1))
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 2))  // up through 30
	assert.Equal(t, None, s.Evaluate(candles, ind, 3)) // still rising, no level cross
	assert.Equal(t, None, s.Evaluate(candles, ind, 4)) // up through 70 is not a signal
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 5)) // down through 70
}

func TestThreeWhiteSoldiersEvaluate(t *testing.T) {
	t.Parallel()

	s, err := Get("THREE_WHITE_SOLDIERS")
	assert.NoError(t, err)

	// Three consecutive bullish candles with rising closes.
	candles := []market.Candle{
		{Open: 10, Close: 9, High: 10.5, Low: 8.5},
		{Open: 9, Close: 10, High: 10.5, Low: 8.5},
		{Open: 10, Close: 11, High: 11.5, Low: 9.5},
		{Open: 11, Close: 12, High: 12.5, Low: 10.5},
	}
	ind := s.Indicators(candles)
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 3))

	// Two consecutive bearish candles signal an exit.
	candles = []market.Candle{
		{Open: 10, Close: 11},
		{Open: 11, Close: 12},
		{Open: 12, Close: 11.5},
		{Open: 11.5, Close: 11},
	}
	ind = s.Indicators(candles)
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 3))
}

func TestGapAndGoEvaluate(t *testing.T) {
	t.Parallel()

	s, err := Get("GAP_AND_GO")
	assert.NoError(t, err)

	// Opens 2% above the prior close and closes above the open.
	candles := []market.Candle{
		{Open: 100, Close: 100},
		{Open: 102, Close: 103, High: 103.5, Low: 101.5},
	}
	ind := s.Indicators(candles)
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 1))

	// A close below the prior close exits.
	candles = []market.Candle{
		{Open: 100, Close: 100},
		{Open: 100, Close: 99},
	}
	ind = s.Indicators(candles)
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 1))
}

func TestInsideBarEvaluate(t *testing.T) {
	t.Parallel()

	s, err := Get("INSIDE_BAR")
	assert.NoError(t, err)

	// Bar 1 is inside bar 0; bar 2 breaks above bar 0's high.
	candles := []market.Candle{
		{High: 110, Low: 100, Open: 104, Close: 105},
		{High: 108, Low: 102, Open: 104, Close: 105},
		{High: 112, Low: 106, Open: 106, Close: 111},
	}
	ind := s.Indicators(candles)
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 2))

	// A close below the prior low exits regardless of pattern.
	candles = []market.Candle{
		{High: 110, Low: 100, Open: 104, Close: 105},
		{High: 111, Low: 99, Open: 104, Close: 100},
		{High: 101, Low: 97, Open: 100, Close: 98},
	}
	ind = s.Indicators(candles)
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 2))
}

func TestBollingerBreakoutUsesPriorBands(t *testing.T) {
	t.Parallel()

	s, err := Get("BOLLINGER_BREAKOUT")
	assert.NoError(t, err)

	ind := IndicatorSet{
		"bbUpper":  {math.NaN(), 105, 106},
		"bbMiddle": {math.NaN(), 100, 101},
		"bbLower":  {math.NaN(), 95, 96},
	}
	// Bar 2 closes above the PRIOR bar's upper band (105) but below its own
	// band (106): still a breakout.
	candles := candlesFromCloses([]float64{100, 100, 105.5})
	assert.Equal(t, Buy, s.Evaluate(candles, ind, 2))

	// Closing below the prior middle band exits.
	candles = candlesFromCloses([]float64{100, 100, 99})
	assert.Equal(t, Sell, s.Evaluate(candles, ind, 2))
}

func TestWarmupYieldsNone(t *testing.T) {
	t.Parallel()

	// Every catalog strategy must stay silent while its indicators are NaN.
	candles := candlesFromCloses([]float64{100, 101, 102, 101, 100, 99, 100, 101})
	for _, s := range List() {
		ind := s.Indicators(candles)
		for i := range candles {
			if i < 2 {
				assert.Equal(t, None, s.Evaluate(candles, ind, i),
					"%s emitted a signal at bar %d", s.ID(), i)
			}
		}
	}
}

func TestIndicatorSeriesAligned(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 260)
	for i := range closes {
		closes[i] = 100 + math.Sin(float64(i)/10)*5
	}
	candles := candlesFromCloses(closes)

	for _, s := range List() {
		ind := s.Indicators(candles)
		for name, series := range ind {
			assert.Len(t, series, len(candles),
				"%s series %q not aligned with candles", s.ID(), name)
		}
	}
}
