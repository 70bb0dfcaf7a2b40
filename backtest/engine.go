// Package backtest replays a candle series through a strategy's decision rule
// and aggregates the resulting trades into performance metrics.
package backtest

import (
	"time"

	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/strategies"
)

// WarmupBars is the fixed number of leading bars skipped before any rule is
// evaluated. A single conservative offset covers every catalog strategy's
// indicator warm-up (the longest is the 200-bar SMA).
const WarmupBars = 200

// DefaultStartingBalance seeds the simulated account, matching the ledger's
// initial funds.
const DefaultStartingBalance = 100_000

// Direction of a simulated trade.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// SimulatedTrade is one completed round trip. Entries open at the signal
// bar's close; profit is per share/unit of price movement.
type SimulatedTrade struct {
	Direction  Direction `json:"direction"`
	EntryIndex int       `json:"entryIndex"`
	ExitIndex  int       `json:"exitIndex"`
	EntryTime  time.Time `json:"entryTime"`
	ExitTime   time.Time `json:"exitTime"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	Profit     float64   `json:"profit"`
}

// Engine runs backtests from a fixed starting balance.
type Engine struct {
	StartingBalance float64
}

func NewEngine(startingBalance float64) *Engine {
	if startingBalance <= 0 {
		startingBalance = DefaultStartingBalance
	}
	return &Engine{StartingBalance: startingBalance}
}

// position states for the signal machine
type state int

const (
	flat state = iota
	long
	short
)

// Run replays the candle series through the strategy identified by id.
//
// A series no longer than the warm-up offset produces an empty report with
// zero metrics rather than an error; an id absent from the registry fails
// fast. Identical inputs always produce identical reports.
func (e *Engine) Run(strategyID string, candles []market.Candle) (*Report, error) {
	strat, err := strategies.Get(strategyID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		StrategyID:      strat.ID(),
		StrategyName:    strat.Name(),
		Params:          strat.Params(),
		StartingBalance: e.StartingBalance,
		FinalBalance:    e.StartingBalance,
		Trades:          []SimulatedTrade{},
	}

	if len(candles) <= WarmupBars {
		// Not enough history to evaluate anything.
		return report, nil
	}

	ind := strat.Indicators(candles)
	report.Indicators = ind

	var (
		pos        = flat
		entryIndex int
		entryPrice float64
		entryTime  time.Time
	)

	closeTrade := func(dir Direction, exitIndex int, exitPrice float64, exitTime time.Time) {
		profit := exitPrice - entryPrice
		if dir == Short {
			profit = entryPrice - exitPrice
		}
		report.Trades = append(report.Trades, SimulatedTrade{
			Direction:  dir,
			EntryIndex: entryIndex,
			ExitIndex:  exitIndex,
			EntryTime:  entryTime,
			ExitTime:   exitTime,
			EntryPrice: entryPrice,
			ExitPrice:  exitPrice,
			Profit:     profit,
		})
	}

	for i := WarmupBars; i < len(candles); i++ {
		action := strat.Evaluate(candles, ind, i)
		price := candles[i].Close
		when := candles[i].Time

		switch {
		case action == strategies.Buy && pos != long:
			if pos == short {
				closeTrade(Short, i, price, when)
			}
			pos = long
			entryIndex, entryPrice, entryTime = i, price, when

		case action == strategies.Sell && pos != short:
			if pos == long {
				closeTrade(Long, i, price, when)
			}
			pos = short
			entryIndex, entryPrice, entryTime = i, price, when
		}
		// An action matching the current state is a no-op: no pyramiding.
	}

	// Force-close at the final bar so the trade log is complete and metrics
	// are not biased by an unterminated position.
	if pos != flat {
		last := len(candles) - 1
		dir := Long
		if pos == short {
			dir = Short
		}
		closeTrade(dir, last, candles[last].Close, candles[last].Time)
	}

	report.computeMetrics()
	return report, nil
}
