package journal

const Schema = `
CREATE TABLE IF NOT EXISTS positions (
	id TEXT PRIMARY KEY,
	ticker TEXT NOT NULL,
	name TEXT NOT NULL,
	strategy TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	entry_price REAL NOT NULL,
	quantity REAL NOT NULL,
	investment REAL NOT NULL,
	target_price REAL NOT NULL,
	stop_price REAL NOT NULL,
	planned_holding_days INTEGER NOT NULL,
	planned_exit_date TEXT NOT NULL,
	expected_return_pct REAL NOT NULL,
	backtest_win_rate_pct REAL NOT NULL,
	entry_reason TEXT NOT NULL,
	status TEXT NOT NULL,
	current_price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS closed (
	seq INTEGER NOT NULL,
	id TEXT PRIMARY KEY,
	ticker TEXT NOT NULL,
	name TEXT NOT NULL,
	strategy TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	exit_date TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	quantity REAL NOT NULL,
	actual_holding_days INTEGER NOT NULL,
	actual_return_pct REAL,  -- NULL encodes a non-finite value
	actual_profit REAL NOT NULL,
	exit_reason TEXT NOT NULL,
	planned_exit_price REAL NOT NULL,
	planned_profit REAL NOT NULL,
	discipline_loss REAL NOT NULL,
	discipline_score REAL,   -- NULL encodes a non-finite value
	discipline_grade TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_closed_exit_date ON closed(exit_date);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
