package backtest

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/papertrade/strategies"
)

// Report is the outcome of one backtest run. It is a plain value: recomputed
// per run, owned by the caller, never persisted by the engine.
type Report struct {
	StrategyID   string             `json:"strategyId"`
	StrategyName string             `json:"strategyName"`
	Params       map[string]float64 `json:"params"`

	StartingBalance float64 `json:"startingBalance"`
	FinalBalance    float64 `json:"finalBalance"`
	NetProfit       float64 `json:"netProfit"`

	TotalTrades   int     `json:"totalTrades"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
	WinRate       float64 `json:"winRate"` // percent
	GrossProfit   float64 `json:"grossProfit"`
	GrossLoss     float64 `json:"grossLoss"` // positive magnitude
	ProfitFactor  float64 `json:"profitFactor"`

	MaxDrawdownPct float64 `json:"maxDrawdownPercent"`

	Trades     []SimulatedTrade       `json:"trades"`
	Indicators strategies.IndicatorSet `json:"indicators,omitempty"`
}

// computeMetrics walks the trade list in order, tracking the running balance
// and its peak so the drawdown reflects the actual sequence of results.
func (r *Report) computeMetrics() {
	balance := r.StartingBalance
	peak := r.StartingBalance

	for _, t := range r.Trades {
		balance += t.Profit
		if t.Profit > 0 {
			r.WinningTrades++
			r.GrossProfit += t.Profit
		} else {
			r.LosingTrades++
			r.GrossLoss += -t.Profit
		}

		if balance > peak {
			peak = balance
		}
		dd := (peak - balance) / peak * 100
		if dd > r.MaxDrawdownPct {
			r.MaxDrawdownPct = dd
		}
	}

	r.TotalTrades = len(r.Trades)
	r.FinalBalance = balance
	r.NetProfit = balance - r.StartingBalance
	if r.TotalTrades > 0 {
		r.WinRate = float64(r.WinningTrades) / float64(r.TotalTrades) * 100
	}
	if r.GrossLoss > 0 {
		r.ProfitFactor = r.GrossProfit / r.GrossLoss
	}
}

// Summary renders a human-readable block for CLI output.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Strategy:      %s (%s)\n", r.StrategyName, r.StrategyID)
	fmt.Fprintf(&b, "Trades:        %d (%d wins / %d losses)\n", r.TotalTrades, r.WinningTrades, r.LosingTrades)
	fmt.Fprintf(&b, "Win Rate:      %.2f%%\n", r.WinRate)
	fmt.Fprintf(&b, "Net Profit:    %.2f\n", r.NetProfit)
	fmt.Fprintf(&b, "Final Balance: %.2f\n", r.FinalBalance)
	fmt.Fprintf(&b, "Profit Factor: %.2f\n", r.ProfitFactor)
	fmt.Fprintf(&b, "Max Drawdown:  %.2f%%\n", r.MaxDrawdownPct)
	return b.String()
}
