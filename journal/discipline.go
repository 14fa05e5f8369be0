package journal

import "sort"

// ViolationThreshold marks a closed trade as a discipline violation when its
// discipline loss falls below this amount (account currency units).
const ViolationThreshold = -10000

// Violations returns the closed trades whose discipline loss crossed the
// threshold, worst first (most negative loss leads). Callers wanting a short
// review list slice the front.
func Violations(b *Book) []ClosedTrade {
	var out []ClosedTrade
	for _, c := range b.Closed {
		if c.DisciplineLoss < ViolationThreshold {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisciplineLoss < out[j].DisciplineLoss
	})
	return out
}

// ReasonStat is the per-exit-reason rollup: how often the reason occurred
// and the mean realized profit across those trades.
type ReasonStat struct {
	Reason    ExitReason
	Count     int
	AvgProfit float64
}

// ExitReasonBreakdown groups the ledger by exit reason. Groups appear in the
// order each reason first occurs in the ledger, not sorted.
func ExitReasonBreakdown(b *Book) []ReasonStat {
	order := map[ExitReason]int{}
	var out []ReasonStat
	totals := map[ExitReason]float64{}

	for _, c := range b.Closed {
		i, seen := order[c.ExitReason]
		if !seen {
			i = len(out)
			order[c.ExitReason] = i
			out = append(out, ReasonStat{Reason: c.ExitReason})
		}
		out[i].Count++
		totals[c.ExitReason] += c.ActualProfit
	}

	for i := range out {
		out[i].AvgProfit = totals[out[i].Reason] / float64(out[i].Count)
	}
	return out
}

// Hint suggests what to work on for a violation, keyed by how the trade was
// closed.
func Hint(r ExitReason) string {
	switch r {
	case EarlyProfitTake:
		return "hold for the target; the plan already priced in the wait"
	case EarlyStopLoss:
		return "short-term noise tripped the exit; trust the planned stop"
	default:
		return "stick to the planned exit"
	}
}
