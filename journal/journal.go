package journal

import (
	"encoding/json"
	"errors"
	"math"
)

// ErrNotFound is returned when an operation references a position id that is
// not in the book. Closing or repricing an unknown id is an error, never a
// silent no-op.
var ErrNotFound = errors.New("position not found")

// StatusHolding marks a position that has not been closed yet. The Korean
// spelling is part of the workbook column contract.
const StatusHolding = "보유중"

// ExitReason categorizes why a position was closed: on-plan goal or stop
// versus an early deviation from the plan.
type ExitReason string

const (
	GoalReached     ExitReason = "GoalReached"
	EarlyProfitTake ExitReason = "EarlyProfitTake"
	StopLossHit     ExitReason = "StopLossHit"
	EarlyStopLoss   ExitReason = "EarlyStopLoss"
)

// reasonLabels are the workbook spellings; the column contract predates this
// program and is shared with the spreadsheet template.
var reasonLabels = map[ExitReason]string{
	GoalReached:     "목표달성",
	EarlyProfitTake: "조기익절",
	StopLossHit:     "손절",
	EarlyStopLoss:   "조기손절",
}

// Label returns the workbook spelling of the reason.
func (r ExitReason) Label() string {
	if l, ok := reasonLabels[r]; ok {
		return l
	}
	return string(r)
}

// ParseExitReason accepts either the canonical name or the workbook label.
// Unknown values pass through unchanged so imported history survives a round
// trip.
func ParseExitReason(s string) ExitReason {
	for r, label := range reasonLabels {
		if s == string(r) || s == label {
			return r
		}
	}
	return ExitReason(s)
}

// Position is an open trade with its entry terms and the pre-committed exit
// plan. Once created only CurrentPrice may change; every other field is part
// of the plan and stays fixed until the position closes.
type Position struct {
	ID                 string  `json:"id"`
	Ticker             string  `json:"ticker"`
	Name               string  `json:"name"`
	Strategy           string  `json:"strategy"`
	EntryDate          string  `json:"entryDate"` // YYYY-MM-DD
	EntryPrice         float64 `json:"entryPrice"`
	Quantity           float64 `json:"quantity"`
	Investment         float64 `json:"investment"` // entryPrice * quantity
	TargetPrice        float64 `json:"targetPrice"`
	StopPrice          float64 `json:"stopPrice"`
	PlannedHoldingDays int     `json:"plannedHoldingDays"`
	PlannedExitDate    string  `json:"plannedExitDate"`
	ExpectedReturnPct  float64 `json:"expectedReturnPct"`
	BacktestWinRatePct float64 `json:"backtestWinRatePct"`
	EntryReason        string  `json:"entryReason"`
	Status             string  `json:"status"`
	CurrentPrice       float64 `json:"currentPrice"`
}

// ClosedTrade is the immutable outcome record created when a position is
// closed. It keeps no reference back to the position; the ledger owns it.
type ClosedTrade struct {
	ID                string     `json:"id"`
	Ticker            string     `json:"ticker"`
	Name              string     `json:"name"`
	Strategy          string     `json:"strategy"`
	EntryDate         string     `json:"entryDate"`
	ExitDate          string     `json:"exitDate"`
	EntryPrice        float64    `json:"entryPrice"`
	ExitPrice         float64    `json:"exitPrice"`
	Quantity          float64    `json:"quantity"`
	ActualHoldingDays int        `json:"actualHoldingDays"`
	ActualReturnPct   float64    `json:"actualReturnPct"`
	ActualProfit      float64    `json:"actualProfit"`
	ExitReason        ExitReason `json:"exitReason"`
	PlannedExitPrice  float64    `json:"plannedExitPrice"`
	PlannedProfit     float64    `json:"plannedProfit"`
	DisciplineLoss    float64    `json:"disciplineLoss"`
	DisciplineScore   float64    `json:"disciplineScore"`
	DisciplineGrade   string     `json:"disciplineGrade"`
}

// A plan with a zero expected return or holding period makes the score
// non-finite, and encoding/json refuses NaN and the infinities outright.
// The snapshot format stores them as null, matching how the previous
// stringified format serialized them; the letter grade is the durable
// record of the outcome. Null reads back as NaN.

func (c ClosedTrade) MarshalJSON() ([]byte, error) {
	type alias ClosedTrade
	a := struct {
		alias
		ActualReturnPct any `json:"actualReturnPct"`
		DisciplineScore any `json:"disciplineScore"`
	}{alias: alias(c)}
	if finite(c.ActualReturnPct) {
		a.ActualReturnPct = c.ActualReturnPct
	}
	if finite(c.DisciplineScore) {
		a.DisciplineScore = c.DisciplineScore
	}
	return json.Marshal(a)
}

func (c *ClosedTrade) UnmarshalJSON(data []byte) error {
	type alias ClosedTrade
	a := struct {
		*alias
		ActualReturnPct *float64 `json:"actualReturnPct"`
		DisciplineScore *float64 `json:"disciplineScore"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	c.ActualReturnPct = math.NaN()
	if a.ActualReturnPct != nil {
		c.ActualReturnPct = *a.ActualReturnPct
	}
	c.DisciplineScore = math.NaN()
	if a.DisciplineScore != nil {
		c.DisciplineScore = *a.DisciplineScore
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Book holds the two record collections: the open positions and the
// append-only ledger of closed trades. A position lives in Positions until
// Close moves it, as a single step, into Closed.
type Book struct {
	Positions []Position    `json:"positions"`
	Closed    []ClosedTrade `json:"closed"`
}

// Find returns a pointer into the book for the given position id.
func (b *Book) Find(id string) (*Position, bool) {
	for i := range b.Positions {
		if b.Positions[i].ID == id {
			return &b.Positions[i], true
		}
	}
	return nil, false
}

// Add appends an open position to the book.
func (b *Book) Add(p Position) {
	b.Positions = append(b.Positions, p)
}

// UpdatePrice sets the current price of an open position. This is the only
// mutation allowed on a position after creation.
func (b *Book) UpdatePrice(id string, price float64) error {
	p, ok := b.Find(id)
	if !ok {
		return ErrNotFound
	}
	p.CurrentPrice = price
	return nil
}
