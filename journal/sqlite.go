package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the production Store implementation. One ApplyFill runs inside a
// single transaction, giving the ledger its all-or-nothing boundary.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) LoadFunds() (Funds, bool, error) {
	var f Funds
	row := s.db.QueryRow(`
		SELECT available_cash, realized_pnl, total_trades
		FROM funds WHERE id = ?`, fundsRowID)
	err := row.Scan(&f.AvailableCash, &f.RealizedPnl, &f.TotalTrades)
	if err == sql.ErrNoRows {
		return Funds{}, false, nil
	}
	if err != nil {
		return Funds{}, false, err
	}
	return f, true, nil
}

func (s *SQLite) SeedFunds(f Funds) error {
	_, err := s.db.Exec(`
		INSERT INTO funds (id, available_cash, realized_pnl, total_trades)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		fundsRowID, f.AvailableCash, f.RealizedPnl, f.TotalTrades)
	return err
}

func (s *SQLite) LoadPositions() ([]Position, error) {
	rows, err := s.db.Query(`
		SELECT symbol, qty, avg_price, realized_pnl, updated_at
		FROM positions ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.Symbol, &p.Quantity, &p.AvgPrice, &p.RealizedPnl, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLite) ApplyFill(f Fill) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (order_id, symbol, side, qty, price, status, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Order.OrderID, f.Order.Symbol, f.Order.Side, f.Order.Quantity,
		f.Order.Price, f.Order.Status, f.Order.Time); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO trades (trade_id, order_id, symbol, side, qty, price, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Trade.TradeID, f.Trade.OrderID, f.Trade.Symbol, f.Trade.Side,
		f.Trade.Quantity, f.Trade.Price, f.Trade.Time); err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}

	if f.DeletePosition {
		if _, err := tx.Exec(`DELETE FROM positions WHERE symbol = ?`, f.Position.Symbol); err != nil {
			return fmt.Errorf("delete position: %w", err)
		}
	} else {
		if _, err := tx.Exec(`
			INSERT INTO positions (symbol, qty, avg_price, realized_pnl, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(symbol) DO UPDATE SET
				qty = excluded.qty,
				avg_price = excluded.avg_price,
				realized_pnl = excluded.realized_pnl,
				updated_at = excluded.updated_at`,
			f.Position.Symbol, f.Position.Quantity, f.Position.AvgPrice,
			f.Position.RealizedPnl, f.Position.UpdatedAt); err != nil {
			return fmt.Errorf("upsert position: %w", err)
		}
	}

	if _, err := tx.Exec(`
		UPDATE funds SET available_cash = ?, realized_pnl = ?, total_trades = ?
		WHERE id = ?`,
		f.Funds.AvailableCash, f.Funds.RealizedPnl, f.Funds.TotalTrades, fundsRowID); err != nil {
		return fmt.Errorf("update funds: %w", err)
	}

	return tx.Commit()
}

func (s *SQLite) ListOrders(limit int) ([]Order, error) {
	rows, err := s.db.Query(listQuery(`
		SELECT order_id, symbol, side, qty, price, status, ts
		FROM orders ORDER BY ts DESC, order_id DESC`, limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.Symbol, &o.Side, &o.Quantity, &o.Price, &o.Status, &o.Time); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLite) ListTrades(limit int) ([]Trade, error) {
	rows, err := s.db.Query(listQuery(`
		SELECT trade_id, order_id, symbol, side, qty, price, ts
		FROM trades ORDER BY ts DESC, trade_id DESC`, limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		if err := rows.Scan(&t.TradeID, &t.OrderID, &t.Symbol, &t.Side, &t.Quantity, &t.Price, &t.Time); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func listQuery(base string, limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%s LIMIT %d", base, limit)
	}
	return base
}
