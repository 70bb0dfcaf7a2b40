package journal

const schema = `
CREATE TABLE IF NOT EXISTS funds (
	id TEXT PRIMARY KEY,
	available_cash REAL NOT NULL,
	realized_pnl REAL NOT NULL,
	total_trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	symbol TEXT PRIMARY KEY,
	qty REAL NOT NULL,
	avg_price REAL NOT NULL,
	realized_pnl REAL NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	order_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	qty REAL NOT NULL,
	price REAL NOT NULL,
	status TEXT NOT NULL,
	ts DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	qty REAL NOT NULL,
	price REAL NOT NULL,
	ts DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_ts ON orders(ts);
CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(ts);
`

// fundsRowID keys the single funds row.
const fundsRowID = "main"
