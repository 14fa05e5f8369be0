package journal

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists the book in a SQLite database: one table per record
// collection plus a meta table for the last-update timestamp. Save replaces
// the whole snapshot in a single transaction.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load() (*Book, string, error) {
	b := &Book{}

	rows, err := s.db.Query(`
		SELECT id, ticker, name, strategy, entry_date, entry_price, quantity,
			investment, target_price, stop_price, planned_holding_days,
			planned_exit_date, expected_return_pct, backtest_win_rate_pct,
			entry_reason, status, current_price
		FROM positions`)
	if err != nil {
		return nil, "", fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p Position
		if err := rows.Scan(
			&p.ID, &p.Ticker, &p.Name, &p.Strategy, &p.EntryDate,
			&p.EntryPrice, &p.Quantity, &p.Investment, &p.TargetPrice,
			&p.StopPrice, &p.PlannedHoldingDays, &p.PlannedExitDate,
			&p.ExpectedReturnPct, &p.BacktestWinRatePct, &p.EntryReason,
			&p.Status, &p.CurrentPrice,
		); err != nil {
			return nil, "", err
		}
		b.Positions = append(b.Positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	closed, err := s.queryClosed(`ORDER BY seq ASC`)
	if err != nil {
		return nil, "", err
	}
	b.Closed = closed

	var last string
	err = s.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_update'`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", err
	}

	return b, last, nil
}

func (s *SQLite) Save(b *Book, lastUpdate string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM positions`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM closed`); err != nil {
		return err
	}

	for _, p := range b.Positions {
		if _, err := tx.Exec(`
			INSERT INTO positions
			(id, ticker, name, strategy, entry_date, entry_price, quantity,
			 investment, target_price, stop_price, planned_holding_days,
			 planned_exit_date, expected_return_pct, backtest_win_rate_pct,
			 entry_reason, status, current_price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Ticker, p.Name, p.Strategy, p.EntryDate, p.EntryPrice,
			p.Quantity, p.Investment, p.TargetPrice, p.StopPrice,
			p.PlannedHoldingDays, p.PlannedExitDate, p.ExpectedReturnPct,
			p.BacktestWinRatePct, p.EntryReason, p.Status, p.CurrentPrice,
		); err != nil {
			return fmt.Errorf("insert position %q: %w", p.ID, err)
		}
	}

	// seq preserves the ledger's append order across load cycles.
	for i, c := range b.Closed {
		if _, err := tx.Exec(`
			INSERT INTO closed
			(seq, id, ticker, name, strategy, entry_date, exit_date,
			 entry_price, exit_price, quantity, actual_holding_days,
			 actual_return_pct, actual_profit, exit_reason,
			 planned_exit_price, planned_profit, discipline_loss,
			 discipline_score, discipline_grade)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Ticker, c.Name, c.Strategy, c.EntryDate, c.ExitDate,
			c.EntryPrice, c.ExitPrice, c.Quantity, c.ActualHoldingDays,
			metric(c.ActualReturnPct), c.ActualProfit, string(c.ExitReason),
			c.PlannedExitPrice, c.PlannedProfit, c.DisciplineLoss,
			metric(c.DisciplineScore), c.DisciplineGrade,
		); err != nil {
			return fmt.Errorf("insert closed trade %q: %w", c.ID, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_update', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastUpdate,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// metric binds a possibly non-finite float: the driver cannot store NaN or
// the infinities, so they go in as NULL and come back as NaN.
func metric(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
