package journal

// Stats is a read-only rollup over the book: the open side summed from
// positions, the closed side from the ledger. Ratios are defined as zero
// over an empty ledger.
type Stats struct {
	OpenPositions       int
	TotalInvestment     float64
	ClosedTrades        int
	WinRate             float64 // percent of closed trades with a positive return
	TotalProfit         float64
	AvgDisciplineScore  float64
	TotalDisciplineLoss float64
}

// Statistics computes the portfolio rollup for the current book snapshot.
func Statistics(b *Book) Stats {
	s := Stats{
		OpenPositions: len(b.Positions),
		ClosedTrades:  len(b.Closed),
	}

	for _, p := range b.Positions {
		s.TotalInvestment += p.Investment
	}

	wins := 0
	scoreSum := 0.0
	for _, c := range b.Closed {
		if c.ActualReturnPct > 0 {
			wins++
		}
		s.TotalProfit += c.ActualProfit
		s.TotalDisciplineLoss += c.DisciplineLoss
		scoreSum += c.DisciplineScore
	}

	if s.ClosedTrades > 0 {
		s.WinRate = float64(wins) / float64(s.ClosedTrades) * 100
		s.AvgDisciplineScore = scoreSum / float64(s.ClosedTrades)
	}
	return s
}
