package workbook

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rustyeddy/calm/journal"
)

// isoDateFmt keeps date-typed cells displaying the same YYYY-MM-DD text the
// plain string cells carry, so reads are format-independent.
var isoDateFmt = "yyyy-mm-dd"

// Write saves the book as a two-sheet workbook. With formulas enabled the
// positions sheet additionally carries spreadsheet-recomputable formulas for
// investment, target price, stop price and planned exit date; each formula
// cell keeps its precomputed literal value so viewers without a formula
// engine still display correct data.
func Write(path string, b *journal.Book, withFormulas bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPositions); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetClosed); err != nil {
		return err
	}

	dateStyle := 0
	if withFormulas {
		s, err := f.NewStyle(&excelize.Style{CustomNumFmt: &isoDateFmt})
		if err != nil {
			return err
		}
		dateStyle = s
	}

	if err := writeHeader(f, SheetPositions, positionCols); err != nil {
		return err
	}
	for i, p := range b.Positions {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		err := f.SetSheetRow(SheetPositions, cell, &[]any{
			p.ID, p.Ticker, p.Name, p.Strategy, p.EntryDate, p.EntryPrice,
			p.Quantity, p.Investment, p.TargetPrice, p.StopPrice,
			p.PlannedHoldingDays, p.PlannedExitDate, p.ExpectedReturnPct,
			p.BacktestWinRatePct, p.EntryReason, p.Status, p.CurrentPrice,
		})
		if err != nil {
			return fmt.Errorf("write position row %d: %w", row, err)
		}
		if withFormulas {
			if err := setPositionFormulas(f, p, row, dateStyle); err != nil {
				return err
			}
		}
	}

	if err := writeHeader(f, SheetClosed, closedCols); err != nil {
		return err
	}
	for i, c := range b.Closed {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		err := f.SetSheetRow(SheetClosed, cell, &[]any{
			c.ID, c.Ticker, c.Name, c.Strategy, c.EntryDate, c.ExitDate,
			c.EntryPrice, c.ExitPrice, c.Quantity, c.ActualHoldingDays,
			finiteCell(c.ActualReturnPct), c.ActualProfit, c.ExitReason.Label(),
			c.PlannedExitPrice, c.PlannedProfit, c.DisciplineLoss,
			finiteCell(c.DisciplineScore), c.DisciplineGrade,
		})
		if err != nil {
			return fmt.Errorf("write closed row %d: %w", row, err)
		}
	}

	return f.SaveAs(path)
}

func writeHeader(f *excelize.File, sheet string, cols []string) error {
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	return f.SetSheetRow(sheet, "A1", &header)
}

// setPositionFormulas mirrors the template's derived columns:
// H investment = F*G, I target = F*(1+M/100), J stop = F*(1+lossRate/100),
// L planned exit date = E+K. The stop-loss rate is derived once from the
// stored stop price and fixed into the formula; it defaults to -10 when the
// entry price carries no information.
//
// The E+K formula is date arithmetic, so E and the cached L value must be
// date-typed cells rather than the ISO strings the plain export writes.
func setPositionFormulas(f *excelize.File, p journal.Position, row, dateStyle int) error {
	set := func(col string, formula string) error {
		return f.SetCellFormula(SheetPositions, fmt.Sprintf("%s%d", col, row), formula)
	}

	if err := set("H", fmt.Sprintf("F%d*G%d", row, row)); err != nil {
		return err
	}
	if err := set("I", fmt.Sprintf("F%d*(1+M%d/100)", row, row)); err != nil {
		return err
	}

	lossRate := -10.0
	if p.EntryPrice != 0 && p.StopPrice > 0 {
		lossRate = (p.StopPrice/p.EntryPrice - 1) * 100
	}
	if err := set("J", fmt.Sprintf("F%d*(1+%.2f/100)", row, lossRate)); err != nil {
		return err
	}

	if err := setDateCell(f, fmt.Sprintf("E%d", row), p.EntryDate, dateStyle); err != nil {
		return err
	}
	if p.EntryDate != "" && p.PlannedHoldingDays > 0 {
		cell := fmt.Sprintf("L%d", row)
		if err := setDateCell(f, cell, p.PlannedExitDate, dateStyle); err != nil {
			return err
		}
		if err := set("L", fmt.Sprintf("E%d+K%d", row, row)); err != nil {
			return err
		}
	}
	return nil
}

// finiteCell blanks a non-finite metric; a spreadsheet cell cannot hold
// NaN, and an undefined score shows as empty next to its letter grade.
func finiteCell(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// setDateCell retypes a cell from its ISO string to a date serial with the
// ISO display format. Unparseable dates keep the string cell as written.
func setDateCell(f *excelize.File, cell, iso string, style int) error {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	if err := f.SetCellValue(SheetPositions, cell, d); err != nil {
		return err
	}
	return f.SetCellStyle(SheetPositions, cell, cell, style)
}

// WriteTemplate produces the starter workbook with sample rows showing the
// expected shape of both sheets.
func WriteTemplate(path string) error {
	b := &journal.Book{
		Positions: []journal.Position{
			{
				ID: "1", Ticker: "000660", Name: "SK하이닉스", Strategy: "추세추종",
				EntryDate: "2026-01-02", EntryPrice: 677000, Quantity: 10,
				Investment: 6770000, TargetPrice: 715000, StopPrice: 452000,
				PlannedHoldingDays: 20, PlannedExitDate: "2026-01-27",
				ExpectedReturnPct: 5.61, BacktestWinRatePct: 63.6,
				EntryReason: "스캔 결과 상위", Status: statusHolding, CurrentPrice: 677000,
			},
			{
				ID: "2", Ticker: "005930", Name: "삼성전자", Strategy: "변동성돌파",
				EntryDate: "2026-01-03", EntryPrice: 50000, Quantity: 40,
				Investment: 2000000, TargetPrice: 53900, StopPrice: 40600,
				PlannedHoldingDays: 5, PlannedExitDate: "2026-01-10",
				ExpectedReturnPct: 7.8, BacktestWinRatePct: 84.2,
				EntryReason: "강한 시그널", Status: statusHolding, CurrentPrice: 50000,
			},
		},
		Closed: []journal.ClosedTrade{
			{
				ID: "99", Ticker: "035720", Name: "카카오", Strategy: "추세추종",
				EntryDate: "2025-12-01", ExitDate: "2025-12-15",
				EntryPrice: 45000, ExitPrice: 47000, Quantity: 20,
				ActualHoldingDays: 14, ActualReturnPct: 4.44, ActualProfit: 40000,
				ExitReason: journal.EarlyProfitTake, PlannedExitPrice: 48600,
				PlannedProfit: 72000, DisciplineLoss: -32000,
				DisciplineScore: 61.7, DisciplineGrade: "D",
			},
		},
	}
	return Write(path, b, false)
}
