package journal

import "math"

// FieldIssue describes one problem found while checking an imported or
// manually entered position. Import stays lenient: rows are never rejected,
// the issues are reported alongside the defaulted record so callers can
// decide how strict to be.
type FieldIssue struct {
	Field  string
	Reason string
}

// Validate enumerates per-field problems with the position.
func (p Position) Validate() []FieldIssue {
	var issues []FieldIssue

	if p.ID == "" {
		issues = append(issues, FieldIssue{"id", "missing"})
	}
	if p.Ticker == "" {
		issues = append(issues, FieldIssue{"ticker", "missing"})
	}
	if p.EntryDate == "" {
		issues = append(issues, FieldIssue{"entryDate", "missing"})
	}
	if p.EntryPrice <= 0 {
		issues = append(issues, FieldIssue{"entryPrice", "must be positive"})
	}
	if p.Quantity <= 0 {
		issues = append(issues, FieldIssue{"quantity", "must be positive"})
	}
	if p.PlannedHoldingDays <= 0 {
		issues = append(issues, FieldIssue{"plannedHoldingDays", "must be positive; zero makes the discipline score undefined"})
	}
	if p.ExpectedReturnPct == 0 {
		issues = append(issues, FieldIssue{"expectedReturnPct", "zero makes the discipline score undefined"})
	}
	if p.Investment != 0 && p.EntryPrice > 0 && p.Quantity > 0 &&
		math.Abs(p.Investment-p.EntryPrice*p.Quantity) > 0.5 {
		issues = append(issues, FieldIssue{"investment", "does not equal entryPrice*quantity"})
	}
	return issues
}
