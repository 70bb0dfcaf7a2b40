package journal

import "sync"

// Memory is an in-process Store for tests and demos. It mirrors the SQLite
// semantics, including newest-first listings.
type Memory struct {
	mu        sync.Mutex
	funds     Funds
	hasFunds  bool
	positions map[string]Position
	orders    []Order
	trades    []Trade
}

func NewMemory() *Memory {
	return &Memory{positions: make(map[string]Position)}
}

func (m *Memory) LoadFunds() (Funds, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.funds, m.hasFunds, nil
}

func (m *Memory) SeedFunds(f Funds) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasFunds {
		m.funds = f
		m.hasFunds = true
	}
	return nil
}

func (m *Memory) LoadPositions() ([]Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Position, 0, len(m.positions))
	for _, p := range m.positions {
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) ApplyFill(f Fill) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, f.Order)
	m.trades = append(m.trades, f.Trade)
	if f.DeletePosition {
		delete(m.positions, f.Position.Symbol)
	} else {
		m.positions[f.Position.Symbol] = f.Position
	}
	m.funds = f.Funds
	m.hasFunds = true
	return nil
}

func (m *Memory) ListOrders(limit int) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.orders[i])
	}
	return out, nil
}

func (m *Memory) ListTrades(limit int) ([]Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Trade, 0, len(m.trades))
	for i := len(m.trades) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.trades[i])
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
