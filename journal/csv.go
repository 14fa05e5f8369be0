// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVExport writes the book as two flat CSV files with canonical column
// names, for tools that cannot read the workbook format.
type CSVExport struct {
	positions *csv.Writer
	closed    *csv.Writer
	pf, cf    *os.File
}

func NewCSV(positionsPath, closedPath string) (*CSVExport, error) {
	pf, err := os.Create(positionsPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(closedPath)
	if err != nil {
		return nil, err
	}

	pw := csv.NewWriter(pf)
	cw := csv.NewWriter(cf)

	if err := pw.Write([]string{"id", "ticker", "name", "strategy", "entry_date", "entry_price", "quantity", "investment", "target_price", "stop_price", "planned_holding_days", "planned_exit_date", "expected_return_pct", "backtest_win_rate_pct", "entry_reason", "status", "current_price"}); err != nil {
		return nil, err
	}
	if err := cw.Write([]string{"id", "ticker", "name", "strategy", "entry_date", "exit_date", "entry_price", "exit_price", "quantity", "actual_holding_days", "actual_return_pct", "actual_profit", "exit_reason", "planned_exit_price", "planned_profit", "discipline_loss", "discipline_score", "discipline_grade"}); err != nil {
		return nil, err
	}

	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVExport{pw, cw, pf, cf}, nil
}

func (e *CSVExport) WritePosition(p Position) error {
	e.positions.Write([]string{
		p.ID,
		p.Ticker,
		p.Name,
		p.Strategy,
		p.EntryDate,
		f(p.EntryPrice),
		f(p.Quantity),
		f(p.Investment),
		f(p.TargetPrice),
		f(p.StopPrice),
		strconv.Itoa(p.PlannedHoldingDays),
		p.PlannedExitDate,
		f(p.ExpectedReturnPct),
		f(p.BacktestWinRatePct),
		p.EntryReason,
		p.Status,
		f(p.CurrentPrice),
	})
	e.positions.Flush()
	return e.positions.Error()
}

func (e *CSVExport) WriteClosed(c ClosedTrade) error {
	e.closed.Write([]string{
		c.ID,
		c.Ticker,
		c.Name,
		c.Strategy,
		c.EntryDate,
		c.ExitDate,
		f(c.EntryPrice),
		f(c.ExitPrice),
		f(c.Quantity),
		strconv.Itoa(c.ActualHoldingDays),
		f(c.ActualReturnPct),
		f(c.ActualProfit),
		string(c.ExitReason),
		f(c.PlannedExitPrice),
		f(c.PlannedProfit),
		f(c.DisciplineLoss),
		f(c.DisciplineScore),
		c.DisciplineGrade,
	})
	e.closed.Flush()
	return e.closed.Error()
}

// WriteBook dumps the whole book.
func (e *CSVExport) WriteBook(b *Book) error {
	for _, p := range b.Positions {
		if err := e.WritePosition(p); err != nil {
			return err
		}
	}
	for _, c := range b.Closed {
		if err := e.WriteClosed(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *CSVExport) Close() error {
	e.positions.Flush()
	if err := e.positions.Error(); err != nil {
		return err
	}
	e.closed.Flush()
	if err := e.closed.Error(); err != nil {
		return err
	}

	if err := e.pf.Close(); err != nil {
		return err
	}
	if err := e.cf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
