package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportWithProfits(start float64, profits ...float64) *Report {
	r := &Report{StartingBalance: start, FinalBalance: start}
	for _, p := range profits {
		r.Trades = append(r.Trades, SimulatedTrade{Profit: p})
	}
	r.computeMetrics()
	return r
}

func TestComputeMetrics(t *testing.T) {
	t.Parallel()

	r := reportWithProfits(100_000, 100, -50, 10, -200)

	assert.Equal(t, 4, r.TotalTrades)
	assert.Equal(t, 2, r.WinningTrades)
	assert.Equal(t, 2, r.LosingTrades)
	assert.InDelta(t, 50.0, r.WinRate, 1e-9)
	assert.InDelta(t, 99_860.0, r.FinalBalance, 1e-9)
	assert.InDelta(t, -140.0, r.NetProfit, 1e-9)
	assert.InDelta(t, 110.0, r.GrossProfit, 1e-9)
	assert.InDelta(t, 250.0, r.GrossLoss, 1e-9)
	assert.InDelta(t, 0.44, r.ProfitFactor, 1e-9)

	// Peak is 100100 after the first trade; the trough is 99860, so the
	// drawdown is 240 against that peak.
	assert.InDelta(t, 240.0/100_100.0*100, r.MaxDrawdownPct, 1e-9)
}

func TestComputeMetricsDrawdownDependsOnOrder(t *testing.T) {
	t.Parallel()

	// Same trade set, different order: the loss-first sequence draws down
	// against a lower peak, producing a different percentage.
	lossFirst := reportWithProfits(100_000, -200, 100, -50, 10)
	winFirst := reportWithProfits(100_000, 100, 10, -50, -200)

	assert.InDelta(t, lossFirst.FinalBalance, winFirst.FinalBalance, 1e-9)
	assert.InDelta(t, 200.0/100_000.0*100, lossFirst.MaxDrawdownPct, 1e-9)
	assert.InDelta(t, 250.0/100_110.0*100, winFirst.MaxDrawdownPct, 1e-9)
	assert.NotEqual(t, lossFirst.MaxDrawdownPct, winFirst.MaxDrawdownPct)
}

func TestComputeMetricsZeroProfitCountsAsLoss(t *testing.T) {
	t.Parallel()

	r := reportWithProfits(100_000, 0)
	assert.Equal(t, 0, r.WinningTrades)
	assert.Equal(t, 1, r.LosingTrades)
	assert.InDelta(t, 0.0, r.WinRate, 1e-9)
	assert.Equal(t, 0.0, r.ProfitFactor)
}

func TestComputeMetricsAllWins(t *testing.T) {
	t.Parallel()

	r := reportWithProfits(100_000, 50, 25)
	assert.InDelta(t, 100.0, r.WinRate, 1e-9)
	assert.Equal(t, 0.0, r.MaxDrawdownPct)
	// No losses: profit factor stays at its zero value rather than dividing
	// by zero.
	assert.Equal(t, 0.0, r.ProfitFactor)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	r := reportWithProfits(100_000, 100, -40)
	r.StrategyID = "RSI_REVERSAL"
	r.StrategyName = "RSI Reversal (30/70)"

	s := r.Summary()
	assert.Contains(t, s, "RSI_REVERSAL")
	assert.Contains(t, s, "Trades:        2")
	assert.Contains(t, s, "Win Rate:      50.00%")
	assert.Contains(t, s, "Net Profit:    60.00")
	assert.Contains(t, s, "Final Balance: 100060.00")
}
