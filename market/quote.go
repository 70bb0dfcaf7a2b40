package market

import (
	"errors"
	"sync"
	"time"
)

// Quote is a point-in-time snapshot for a symbol as delivered by the market
// data feed: last traded price plus day change.
type Quote struct {
	Symbol    string    `json:"symbol"`
	LTP       float64   `json:"ltp"`
	Change    float64   `json:"change"`
	ChangePct float64   `json:"changePct"`
	Time      time.Time `json:"time"`
}

var ErrQuoteNotFound = errors.New("quote not found")

// QuoteStore keeps the latest quote per symbol. The stream client writes,
// everything else reads; neither the ledger nor the backtester depend on it.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{quotes: make(map[string]Quote)}
}

func (qs *QuoteStore) Set(q Quote) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.quotes[q.Symbol] = q
}

func (qs *QuoteStore) Get(symbol string) (Quote, error) {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	q, ok := qs.quotes[symbol]
	if !ok {
		return Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Symbols returns the symbols currently held by the store.
func (qs *QuoteStore) Symbols() []string {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	out := make([]string, 0, len(qs.quotes))
	for sym := range qs.quotes {
		out = append(out, sym)
	}
	return out
}
