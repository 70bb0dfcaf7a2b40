// Package journal is the durable store behind the ledger: the funds row, the
// open positions, and the append-only order and trade logs.
package journal

import "time"

// Funds is the single account-wide cash record.
type Funds struct {
	AvailableCash float64
	RealizedPnl   float64
	TotalTrades   int
}

// Position is the current net position for one symbol. Quantity is signed:
// positive long, negative short. AvgPrice is 0 when Quantity is 0.
type Position struct {
	Symbol      string
	Quantity    float64
	AvgPrice    float64
	RealizedPnl float64
	UpdatedAt   time.Time
}

// Order is one append-only order log entry. This ledger fills immediately, so
// status is always EXECUTED once recorded.
type Order struct {
	OrderID  string
	Symbol   string
	Side     string // BUY or SELL
	Quantity float64
	Price    float64
	Status   string
	Time     time.Time
}

// Trade is the execution record mirroring an order.
type Trade struct {
	TradeID  string
	OrderID  string
	Symbol   string
	Side     string
	Quantity float64
	Price    float64
	Time     time.Time
}

// Fill is everything one executed order changes, persisted as a unit.
type Fill struct {
	Order Order
	Trade Trade

	// Post-fill position state; DeletePosition removes the row instead
	// (net quantity returned to zero).
	Position       Position
	DeletePosition bool

	Funds Funds
}

// Store persists ledger state. ApplyFill must be all-or-nothing: a failed
// write leaves funds, positions, orders and trades untouched.
type Store interface {
	LoadFunds() (Funds, bool, error)
	SeedFunds(Funds) error
	LoadPositions() ([]Position, error)

	ApplyFill(Fill) error

	// ListOrders and ListTrades return newest-first, at most limit rows
	// (limit <= 0 means no cap).
	ListOrders(limit int) ([]Order, error)
	ListTrades(limit int) ([]Trade, error)

	Close() error
}
