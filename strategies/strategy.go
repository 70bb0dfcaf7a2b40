// Package strategies holds the fixed catalog of backtest strategy
// definitions. Each strategy names its indicator configuration and a decision
// rule evaluated bar-by-bar; parameters are fixed per definition and callers
// select strategies by id.
package strategies

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rustyeddy/papertrade/market"
)

// Action is the decision a strategy emits for one bar.
type Action int

const (
	None Action = iota
	Buy
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "NONE"
	}
}

// IndicatorSet is a bundle of named numeric series, each aligned
// index-for-index with the candle series it was computed from.
type IndicatorSet map[string][]float64

// Strategy is one catalog entry: identity plus the indicator computation and
// the per-bar decision rule.
type Strategy interface {
	ID() string
	Name() string
	Description() string
	Params() map[string]float64

	// Indicators precomputes every series the rule needs.
	Indicators(candles []market.Candle) IndicatorSet

	// Evaluate returns the action for index i. Indices whose indicator
	// values are still warming up must yield None, never a zero-read.
	Evaluate(candles []market.Candle, ind IndicatorSet, i int) Action
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Strategy)
)

// ErrUnknownStrategy is wrapped by Get for ids absent from the registry.
var ErrUnknownStrategy = fmt.Errorf("unknown strategy")

// Register adds a strategy to the catalog. Called from init in each
// strategy file; duplicate ids panic since they indicate a coding error.
func Register(s Strategy) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[s.ID()]; ok {
		panic("strategies: duplicate id " + s.ID())
	}
	registry[s.ID()] = s
}

// Get looks up a strategy by id.
func Get(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
	return s, nil
}

// List returns the catalog sorted by id.
func List() []Strategy {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Strategy, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// meta carries the identity fields shared by every catalog entry.
type meta struct {
	id     string
	name   string
	desc   string
	params map[string]float64
}

func (m meta) ID() string                 { return m.id }
func (m meta) Name() string               { return m.name }
func (m meta) Description() string        { return m.desc }
func (m meta) Params() map[string]float64 { return m.params }
