package journal

import (
	"database/sql"
	"fmt"
	"math"
)

const closedColumns = `seq, id, ticker, name, strategy, entry_date, exit_date,
	entry_price, exit_price, quantity, actual_holding_days, actual_return_pct,
	actual_profit, exit_reason, planned_exit_price, planned_profit,
	discipline_loss, discipline_score, discipline_grade`

// GetClosedTrade returns a single ledger entry by position id.
func (s *SQLite) GetClosedTrade(id string) (ClosedTrade, error) {
	row := s.db.QueryRow(`
		SELECT `+closedColumns+`
		FROM closed
		WHERE id = ?`, id)

	c, err := scanClosed(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ClosedTrade{}, fmt.Errorf("closed trade %q not found", id)
		}
		return ClosedTrade{}, err
	}
	return c, nil
}

// ListClosedBetween returns ledger entries whose exit date is within
// [start, end), in ledger order. Dates are YYYY-MM-DD strings, which sort
// lexicographically.
func (s *SQLite) ListClosedBetween(start, end string) ([]ClosedTrade, error) {
	return s.queryClosed(`WHERE exit_date >= ? AND exit_date < ? ORDER BY seq ASC`, start, end)
}

func (s *SQLite) queryClosed(clause string, args ...any) ([]ClosedTrade, error) {
	rows, err := s.db.Query(`SELECT `+closedColumns+` FROM closed `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query closed: %w", err)
	}
	defer rows.Close()

	var out []ClosedTrade
	for rows.Next() {
		c, err := scanClosed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClosed(row rowScanner) (ClosedTrade, error) {
	var (
		c      ClosedTrade
		seq    int
		reason string
		ret    sql.NullFloat64
		score  sql.NullFloat64
	)
	err := row.Scan(
		&seq, &c.ID, &c.Ticker, &c.Name, &c.Strategy, &c.EntryDate,
		&c.ExitDate, &c.EntryPrice, &c.ExitPrice, &c.Quantity,
		&c.ActualHoldingDays, &ret, &c.ActualProfit, &reason,
		&c.PlannedExitPrice, &c.PlannedProfit, &c.DisciplineLoss,
		&score, &c.DisciplineGrade,
	)
	if err != nil {
		return ClosedTrade{}, err
	}
	c.ExitReason = ExitReason(reason)
	c.ActualReturnPct = nullMetric(ret)
	c.DisciplineScore = nullMetric(score)
	return c, nil
}

func nullMetric(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
