package journal

import (
	"fmt"
	"strings"
)

// FormatClosedOrg renders a ClosedTrade as an Org-mode block suitable for
// pasting into a written journal. Structured facts live in a PROPERTIES
// drawer for easy search; the narrative sections are left for the trader to
// fill in during review.
func FormatClosedOrg(c ClosedTrade) string {
	heading := fmt.Sprintf("** Closed: %s (%s)", c.Name, c.Ticker)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", c.ID))
	b.WriteString(fmt.Sprintf(":TICKER: %s\n", c.Ticker))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", c.Strategy))
	b.WriteString(fmt.Sprintf(":ENTRY_DATE: %s\n", c.EntryDate))
	b.WriteString(fmt.Sprintf(":EXIT_DATE: %s\n", c.ExitDate))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.2f\n", c.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.2f\n", c.ExitPrice))
	b.WriteString(fmt.Sprintf(":QUANTITY: %.0f\n", c.Quantity))
	b.WriteString(fmt.Sprintf(":HOLDING_DAYS: %d\n", c.ActualHoldingDays))
	b.WriteString(fmt.Sprintf(":RETURN_PCT: %.2f\n", c.ActualReturnPct))
	b.WriteString(fmt.Sprintf(":PROFIT: %.2f\n", c.ActualProfit))
	b.WriteString(fmt.Sprintf(":EXIT_REASON: %s\n", c.ExitReason))
	b.WriteString(fmt.Sprintf(":PLANNED_EXIT_PRICE: %.2f\n", c.PlannedExitPrice))
	b.WriteString(fmt.Sprintf(":PLANNED_PROFIT: %.2f\n", c.PlannedProfit))
	b.WriteString(fmt.Sprintf(":DISCIPLINE_LOSS: %.2f\n", c.DisciplineLoss))
	b.WriteString(fmt.Sprintf(":DISCIPLINE_SCORE: %.1f\n", c.DisciplineScore))
	b.WriteString(fmt.Sprintf(":GRADE: %s\n", c.DisciplineGrade))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Plan\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatLedgerOrg renders the whole ledger, blocks separated by blank lines.
func FormatLedgerOrg(trades []ClosedTrade) string {
	var b strings.Builder
	for i, c := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatClosedOrg(c))
	}
	return b.String()
}
