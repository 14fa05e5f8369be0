// Package workbook reads and writes the two-sheet journal workbook. The
// sheet and column names are a compatibility contract with the spreadsheet
// template the journal grew out of, so they are localized and fixed.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rustyeddy/calm/journal"
)

const (
	// SheetPositionsTemplate is the open-positions sheet name the scanner
	// template uses; it wins over SheetPositions when both exist.
	SheetPositionsTemplate = "포지션목록_템플릿"
	SheetPositions         = "포지션목록"
	SheetClosed            = "청산기록"

	statusHolding = journal.StatusHolding
)

var positionCols = []string{
	"포지션ID", "종목코드", "종목명", "전략", "진입일", "진입가", "수량",
	"투자금", "목표가", "손절가", "계획보유일", "청산예정일", "예상수익률",
	"백테스트승률", "진입사유", "상태", "현재가",
}

var closedCols = []string{
	"포지션ID", "종목코드", "종목명", "전략", "진입일", "청산일", "진입가",
	"청산가", "수량", "실제보유일", "실제수익률", "실제손익", "청산이유",
	"계획청산가", "계획대로손익", "규율손익", "규율점수", "규율등급",
}

// Read loads a workbook into a book. Missing sheets yield empty
// collections; malformed cells default to zero or empty per field. Rows are
// never rejected here; run Position.Validate afterwards for the issue list.
func Read(path string) (*journal.Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	b := &journal.Book{}

	sheet := pickPositionsSheet(f)
	if sheet != "" {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sheet, err)
		}
		for i, rec := range tabular(rows) {
			b.Positions = append(b.Positions, positionFromRow(rec, i))
		}
	}

	if idx, _ := f.GetSheetIndex(SheetClosed); idx >= 0 {
		rows, err := f.GetRows(SheetClosed)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", SheetClosed, err)
		}
		for i, rec := range tabular(rows) {
			b.Closed = append(b.Closed, closedFromRow(rec, i))
		}
	}

	return b, nil
}

func pickPositionsSheet(f *excelize.File) string {
	for _, name := range []string{SheetPositionsTemplate, SheetPositions} {
		if idx, _ := f.GetSheetIndex(name); idx >= 0 {
			return name
		}
	}
	return ""
}

// tabular turns a header row plus data rows into label-keyed records.
func tabular(rows [][]string) []map[string]string {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	var out []map[string]string
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		blank := true
		for i, label := range header {
			if i < len(row) {
				v := strings.TrimSpace(row[i])
				rec[strings.TrimSpace(label)] = v
				if v != "" {
					blank = false
				}
			}
		}
		if blank {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func positionFromRow(rec map[string]string, ordinal int) journal.Position {
	p := journal.Position{
		ID:                 rec["포지션ID"],
		Ticker:             rec["종목코드"],
		Name:               rec["종목명"],
		Strategy:           rec["전략"],
		EntryDate:          journal.NormalizeDate(rec["진입일"]),
		EntryPrice:         number(rec["진입가"]),
		Quantity:           number(rec["수량"]),
		Investment:         number(rec["투자금"]),
		TargetPrice:        number(rec["목표가"]),
		StopPrice:          number(rec["손절가"]),
		PlannedHoldingDays: int(number(rec["계획보유일"])),
		PlannedExitDate:    journal.NormalizeDate(rec["청산예정일"]),
		ExpectedReturnPct:  number(rec["예상수익률"]),
		BacktestWinRatePct: number(rec["백테스트승률"]),
		EntryReason:        rec["진입사유"],
		Status:             rec["상태"],
		CurrentPrice:       number(rec["현재가"]),
	}
	if p.ID == "" {
		p.ID = strconv.Itoa(ordinal + 1)
	}
	if p.Status == "" {
		p.Status = statusHolding
	}
	if p.CurrentPrice == 0 {
		p.CurrentPrice = p.EntryPrice
	}
	return p
}

func closedFromRow(rec map[string]string, ordinal int) journal.ClosedTrade {
	c := journal.ClosedTrade{
		ID:                rec["포지션ID"],
		Ticker:            rec["종목코드"],
		Name:              rec["종목명"],
		Strategy:          rec["전략"],
		EntryDate:         journal.NormalizeDate(rec["진입일"]),
		ExitDate:          journal.NormalizeDate(rec["청산일"]),
		EntryPrice:        number(rec["진입가"]),
		ExitPrice:         number(rec["청산가"]),
		Quantity:          number(rec["수량"]),
		ActualHoldingDays: int(number(rec["실제보유일"])),
		ActualReturnPct:   number(rec["실제수익률"]),
		ActualProfit:      number(rec["실제손익"]),
		ExitReason:        journal.ParseExitReason(rec["청산이유"]),
		PlannedExitPrice:  number(rec["계획청산가"]),
		PlannedProfit:     number(rec["계획대로손익"]),
		DisciplineLoss:    number(rec["규율손익"]),
		DisciplineScore:   number(rec["규율점수"]),
		DisciplineGrade:   rec["규율등급"],
	}
	if c.ID == "" {
		c.ID = strconv.Itoa(ordinal + 1)
	}
	return c
}

// number is the lenient numeric cell parser: thousands separators are
// tolerated, anything unparseable is zero.
func number(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
