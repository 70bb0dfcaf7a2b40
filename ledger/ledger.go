// Package ledger applies market orders against the virtual funds and
// position state. Every order is all-or-nothing: rejections leave no trace,
// accepted orders atomically update funds, the position, and the order and
// trade logs.
package ledger

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/markethours"
	"github.com/rustyeddy/papertrade/pkg/id"
)

// Side of an order.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// StatusExecuted is the only terminal order status: fills are immediate.
const StatusExecuted = "EXECUTED"

// DefaultStartingBalance seeds a fresh account.
const DefaultStartingBalance = 100_000

// OrderRequest is one externally submitted market order.
type OrderRequest struct {
	Symbol   string
	Side     Side
	Quantity float64
	Price    float64

	// Time stamps the order; zero means the ledger clock (normally
	// time.Now) is used.
	Time time.Time
}

// OrderResult reports an accepted order.
type OrderResult struct {
	OrderID string
	Status  string
}

// Config tunes a Ledger. Zero values fall back to defaults.
type Config struct {
	StartingBalance float64
	Hours           markethours.Policy
	Now             func() time.Time
}

// Ledger owns the funds record and the per-symbol positions. All access to
// PlaceOrder is serialized by one mutex; no caller ever observes a partially
// applied order.
type Ledger struct {
	mu    sync.Mutex
	store journal.Store
	hours markethours.Policy
	now   func() time.Time

	funds     journal.Funds
	positions map[string]journal.Position
}

// New loads (or seeds) funds and open positions from the store.
func New(store journal.Store, cfg Config) (*Ledger, error) {
	if cfg.StartingBalance <= 0 {
		cfg.StartingBalance = DefaultStartingBalance
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Hours.CloseMinute == 0 {
		cfg.Hours = markethours.Default()
	}

	funds, ok, err := store.LoadFunds()
	if err != nil {
		return nil, fmt.Errorf("load funds: %w", err)
	}
	if !ok {
		funds = journal.Funds{AvailableCash: cfg.StartingBalance}
		if err := store.SeedFunds(funds); err != nil {
			return nil, fmt.Errorf("seed funds: %w", err)
		}
	}

	positions, err := store.LoadPositions()
	if err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}
	bysym := make(map[string]journal.Position, len(positions))
	for _, p := range positions {
		bysym[p.Symbol] = p
	}

	return &Ledger{
		store:     store,
		hours:     cfg.Hours,
		now:       cfg.Now,
		funds:     funds,
		positions: bysym,
	}, nil
}

// PlaceOrder validates, prices and applies one market order.
//
// The whole operation runs under the ledger lock and persists through a
// single store transaction; a rejection or store failure leaves every piece
// of state exactly as it was.
func (l *Ledger) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	if req.Symbol == "" {
		return OrderResult{}, fmt.Errorf("symbol is required")
	}
	if req.Side != Buy && req.Side != Sell {
		return OrderResult{}, fmt.Errorf("side must be BUY or SELL, got %q", req.Side)
	}
	if req.Quantity <= 0 {
		return OrderResult{}, fmt.Errorf("quantity must be positive, got %v", req.Quantity)
	}
	if req.Price <= 0 {
		return OrderResult{}, fmt.Errorf("price must be positive, got %v", req.Price)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	when := req.Time
	if when.IsZero() {
		when = l.now()
	}

	if err := l.hours.Allow(when); err != nil {
		return OrderResult{}, err
	}

	notional := req.Quantity * req.Price
	if l.funds.AvailableCash < notional {
		return OrderResult{}, &InsufficientFundsError{
			Required:  notional,
			Available: l.funds.AvailableCash,
		}
	}

	pos := l.positions[req.Symbol] // zero value when flat
	newPos, realized := applyFill(pos, req.Side, req.Quantity, req.Price)
	newPos.Symbol = req.Symbol
	newPos.UpdatedAt = when

	// Uniform cash model: the full notional moves through available cash on
	// every order. Across any closed round trip the net cash change equals
	// the realized P&L, so the realized figure is bookkeeping, not a second
	// cash movement.
	newFunds := l.funds
	if req.Side == Buy {
		newFunds.AvailableCash -= notional
	} else {
		newFunds.AvailableCash += notional
	}
	newFunds.RealizedPnl += realized
	newFunds.TotalTrades++

	orderID := id.New()
	fill := journal.Fill{
		Order: journal.Order{
			OrderID:  orderID,
			Symbol:   req.Symbol,
			Side:     string(req.Side),
			Quantity: req.Quantity,
			Price:    req.Price,
			Status:   StatusExecuted,
			Time:     when,
		},
		Trade: journal.Trade{
			TradeID:  id.New(),
			OrderID:  orderID,
			Symbol:   req.Symbol,
			Side:     string(req.Side),
			Quantity: req.Quantity,
			Price:    req.Price,
			Time:     when,
		},
		Position:       newPos,
		DeletePosition: newPos.Quantity == 0,
		Funds:          newFunds,
	}

	if err := l.store.ApplyFill(fill); err != nil {
		return OrderResult{}, fmt.Errorf("persist fill: %w", err)
	}

	// Commit point passed: mirror the stored state in memory.
	l.funds = newFunds
	if fill.DeletePosition {
		delete(l.positions, req.Symbol)
	} else {
		l.positions[req.Symbol] = newPos
	}

	return OrderResult{OrderID: orderID, Status: StatusExecuted}, nil
}

// applyFill computes the post-fill position and the realized P&L delta for
// one executed order against the prior position.
func applyFill(pos journal.Position, side Side, qty, price float64) (journal.Position, float64) {
	net, avg := pos.Quantity, pos.AvgPrice
	var realized float64

	if side == Buy {
		if net >= 0 {
			// Opening or adding to a long: weighted average price.
			avg = (net*avg + qty*price) / (net + qty)
			net += qty
		} else {
			// Covering a short: realize P&L on the covered quantity.
			cover := math.Min(-net, qty)
			realized = (avg - price) * cover
			net += qty
			switch {
			case net > 0:
				avg = price // flipped long, residual basis is the fill
			case net == 0:
				avg = 0
			}
			// Still short: average short price is unchanged.
		}
	} else {
		if net <= 0 {
			// Opening or adding to a short: weighted average short price.
			total := -net*avg + qty*price
			net -= qty
			avg = total / -net
		} else {
			// Closing a long: realize P&L on the closed quantity.
			closed := math.Min(net, qty)
			realized = (price - avg) * closed
			net -= qty
			switch {
			case net < 0:
				avg = price // flipped short
			case net == 0:
				avg = 0
			}
		}
	}

	pos.Quantity = net
	pos.AvgPrice = avg
	pos.RealizedPnl += realized
	return pos, realized
}

// Funds returns a snapshot of the account cash record.
func (l *Ledger) Funds() journal.Funds {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.funds
}

// Position returns the open position for symbol, if any.
func (l *Ledger) Position(symbol string) (journal.Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.positions[symbol]
	return p, ok
}

// Positions returns all open positions sorted by symbol.
func (l *Ledger) Positions() []journal.Position {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]journal.Position, 0, len(l.positions))
	for _, p := range l.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Orders lists recent orders, newest first.
func (l *Ledger) Orders(limit int) ([]journal.Order, error) {
	return l.store.ListOrders(limit)
}

// Trades lists recent trades, newest first.
func (l *Ledger) Trades(limit int) ([]journal.Trade, error) {
	return l.store.ListTrades(limit)
}
