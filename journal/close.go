package journal

import (
	"fmt"
	"math"
	"time"
)

// Close converts the open position identified by id into a ClosedTrade and
// moves it from Positions to the ledger in one step. The caller supplies a
// single now instant; every time-derived field in the resulting record uses
// that same instant, so exitDate and actualHoldingDays cannot drift apart.
//
// plannedExitPrice is the counterfactual comparison price: what the exit
// would have been had the trader followed the plan. The discipline loss is
// the profit delta against that counterfactual.
func (b *Book) Close(id string, exitPrice float64, reason ExitReason, plannedExitPrice float64, now time.Time) (ClosedTrade, error) {
	idx := -1
	for i := range b.Positions {
		if b.Positions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ClosedTrade{}, fmt.Errorf("close %q: %w", id, ErrNotFound)
	}
	p := b.Positions[idx]

	days := holdingDays(p.EntryDate, now)

	actualReturn := (exitPrice/p.EntryPrice - 1) * 100
	actualProfit := (exitPrice - p.EntryPrice) * p.Quantity
	plannedProfit := (plannedExitPrice - p.EntryPrice) * p.Quantity

	// Two equally weighted halves: return efficiency and time efficiency,
	// both relative to the plan. A zero expected return or zero planned
	// holding period makes a half non-finite; Grade resolves that through
	// the plain comparison chain rather than special-casing it here.
	score := (actualReturn/p.ExpectedReturnPct)*50 +
		(float64(days)/float64(p.PlannedHoldingDays))*50

	ct := ClosedTrade{
		ID:                p.ID,
		Ticker:            p.Ticker,
		Name:              p.Name,
		Strategy:          p.Strategy,
		EntryDate:         p.EntryDate,
		ExitDate:          now.UTC().Format("2006-01-02"),
		EntryPrice:        p.EntryPrice,
		ExitPrice:         exitPrice,
		Quantity:          p.Quantity,
		ActualHoldingDays: days,
		ActualReturnPct:   actualReturn,
		ActualProfit:      actualProfit,
		ExitReason:        reason,
		PlannedExitPrice:  plannedExitPrice,
		PlannedProfit:     plannedProfit,
		DisciplineLoss:    actualProfit - plannedProfit,
		DisciplineScore:   score,
		DisciplineGrade:   Grade(score),
	}

	b.Positions = append(b.Positions[:idx], b.Positions[idx+1:]...)
	b.Closed = append(b.Closed, ct)
	return ct, nil
}

// Grade maps a discipline score to its letter bucket. A NaN score fails
// every comparison and lands on F.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// holdingDays counts calendar days from the entry date (midnight UTC) to
// now, rounded up. An unparseable entry date counts as zero days held.
func holdingDays(entryDate string, now time.Time) int {
	entry, err := time.Parse("2006-01-02", entryDate)
	if err != nil {
		return 0
	}
	return int(math.Ceil(now.Sub(entry).Hours() / 24))
}
