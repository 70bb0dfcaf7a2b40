package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/papertrade/market"
)

func assertNaNThrough(t *testing.T, series []float64, last int) {
	t.Helper()
	for i := 0; i <= last; i++ {
		assert.True(t, math.IsNaN(series[i]), "index %d should be NaN", i)
	}
}

func TestSMA(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 3, 4, 5, 6}
	got := SMA(values, 3)

	assert.Len(t, got, len(values))
	assertNaNThrough(t, got, 1)
	assert.InDelta(t, 2.0, got[2], 1e-9)
	assert.InDelta(t, 3.0, got[3], 1e-9)
	assert.InDelta(t, 5.0, got[5], 1e-9)
}

func TestSMABadPeriod(t *testing.T) {
	t.Parallel()

	for _, period := range []int{0, -1, 7} {
		got := SMA([]float64{1, 2, 3}, period)
		assert.Len(t, got, 3)
		assertNaNThrough(t, got, 2)
	}
}

func TestEMA(t *testing.T) {
	t.Parallel()

	values := []float64{10, 11, 12, 13, 14}
	got := EMA(values, 3)

	assertNaNThrough(t, got, 1)
	// Seeded with the SMA of the first three values.
	assert.InDelta(t, 11.0, got[2], 1e-9)
	// multiplier = 2/(3+1) = 0.5
	assert.InDelta(t, 12.0, got[3], 1e-9)
	assert.InDelta(t, 13.0, got[4], 1e-9)
}

func TestRSI(t *testing.T) {
	t.Parallel()

	// Monotonic rise: no losses, RSI pegs at 100 once defined.
	up := []float64{1, 2, 3, 4, 5, 6, 7}
	got := RSI(up, 3)
	assertNaNThrough(t, got, 2)
	for i := 3; i < len(up); i++ {
		assert.Equal(t, 100.0, got[i])
	}

	// Monotonic fall: no gains, RSI is 0.
	down := []float64{7, 6, 5, 4, 3, 2, 1}
	got = RSI(down, 3)
	for i := 3; i < len(down); i++ {
		assert.InDelta(t, 0.0, got[i], 1e-9)
	}
}

func TestRSIRange(t *testing.T) {
	t.Parallel()

	values := []float64{44, 44.5, 43.8, 44.2, 45, 44.6, 45.4, 45.1, 46, 45.5, 46.2, 46.8, 46.1}
	got := RSI(values, 5)

	assertNaNThrough(t, got, 4)
	for i := 5; i < len(values); i++ {
		assert.GreaterOrEqual(t, got[i], 0.0)
		assert.LessOrEqual(t, got[i], 100.0)
	}
}

func TestMACDAlignment(t *testing.T) {
	t.Parallel()

	values := make([]float64, 40)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	line, sig, hist := MACD(values, 3, 6, 4)

	assertNaNThrough(t, line, 4)
	assert.True(t, Defined(line, 5))
	// Signal needs signal-1 more bars past the first defined line value.
	assertNaNThrough(t, sig, 7)
	assert.True(t, Defined(sig, 8))
	for i := range hist {
		if Defined(sig, i) {
			assert.InDelta(t, line[i]-sig[i], hist[i], 1e-9)
		} else {
			assert.False(t, Defined(hist, i))
		}
	}

	// A steadily rising series keeps fast EMA above slow EMA.
	assert.Greater(t, line[len(line)-1], 0.0)
}

func TestBollinger(t *testing.T) {
	t.Parallel()

	// Constant series: zero deviation, all three bands collapse to the mean.
	flat := []float64{5, 5, 5, 5, 5}
	upper, middle, lower := Bollinger(flat, 3, 2)
	for i := 2; i < len(flat); i++ {
		assert.Equal(t, 5.0, upper[i])
		assert.Equal(t, 5.0, middle[i])
		assert.Equal(t, 5.0, lower[i])
	}

	values := []float64{2, 4, 6, 8, 10}
	upper, middle, lower = Bollinger(values, 3, 2)
	assertNaNThrough(t, upper, 1)
	// Window {2,4,6}: mean 4, population sd sqrt(8/3).
	sd := math.Sqrt(8.0 / 3.0)
	assert.InDelta(t, 4+2*sd, upper[2], 1e-9)
	assert.InDelta(t, 4.0, middle[2], 1e-9)
	assert.InDelta(t, 4-2*sd, lower[2], 1e-9)
}

func testCandles(closes []float64) []market.Candle {
	out := make([]market.Candle, len(closes))
	for i, c := range closes {
		out[i] = market.Candle{
			Time:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:  c - 1,
			High:  c + 2,
			Low:   c - 2,
			Close: c,
		}
	}
	return out
}

func TestATR(t *testing.T) {
	t.Parallel()

	// Candles with constant 4-point range and small close drift: the true
	// range is dominated by high-low, so ATR settles near 5.
	candles := testCandles([]float64{10, 11, 12, 11, 12, 13, 12})
	got := ATR(candles, 3)

	assertNaNThrough(t, got, 2)
	for i := 3; i < len(candles); i++ {
		assert.Greater(t, got[i], 0.0)
		assert.Less(t, got[i], 6.0)
	}
}

func TestATRTrueRangeGap(t *testing.T) {
	t.Parallel()

	prev := market.Candle{High: 12, Low: 8, Close: 10}
	gapped := market.Candle{High: 21, Low: 20, Close: 20.5}
	// High-low is 1 but the gap from prior close dominates: 21-10.
	assert.InDelta(t, 11.0, trueRange(gapped, prev), 1e-9)
}

func TestADX(t *testing.T) {
	t.Parallel()

	// A long steady advance: +DI should dominate -DI and ADX should be
	// strongly positive once defined at index 2*period.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + 2*float64(i)
	}
	candles := testCandles(closes)

	adx, plusDI, minusDI := ADX(candles, 5)
	assertNaNThrough(t, adx, 9)
	assert.True(t, Defined(adx, 10))
	assert.True(t, Defined(plusDI, 5))
	assertNaNThrough(t, plusDI, 4)

	last := len(candles) - 1
	assert.Greater(t, plusDI[last], minusDI[last])
	assert.Greater(t, adx[last], 25.0)
	assert.LessOrEqual(t, adx[last], 100.0)
}

func TestHighestHighExcludesCurrentBar(t *testing.T) {
	t.Parallel()

	values := []float64{1, 5, 3, 9, 2, 4}
	got := HighestHigh(values, 3)

	assertNaNThrough(t, got, 2)
	assert.Equal(t, 5.0, got[3]) // max of {1,5,3}, not 9
	assert.Equal(t, 9.0, got[4])
	assert.Equal(t, 9.0, got[5])
}

func TestLowestLowExcludesCurrentBar(t *testing.T) {
	t.Parallel()

	values := []float64{5, 2, 7, 1, 8, 6}
	got := LowestLow(values, 3)

	assertNaNThrough(t, got, 2)
	assert.Equal(t, 2.0, got[3])
	assert.Equal(t, 1.0, got[4])
	assert.Equal(t, 1.0, got[5])
}

func TestDefined(t *testing.T) {
	t.Parallel()

	series := []float64{math.NaN(), 1.5}
	assert.False(t, Defined(series, 0))
	assert.True(t, Defined(series, 1))
	assert.False(t, Defined(series, -1))
	assert.False(t, Defined(series, 2))
}
