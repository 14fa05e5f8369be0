package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var disciplineCmd = &cobra.Command{
	Use:   "discipline",
	Short: "Discipline review: reason breakdown and worst violations",
	Long: `Review how faithfully closed trades followed their plans: the average
discipline score, the per-exit-reason breakdown, and the trades whose
discipline loss crossed the violation threshold, worst first.`,
	Args: cobra.NoArgs,
	RunE: runDiscipline,
}

var disciplineTop int

func init() {
	rootCmd.AddCommand(disciplineCmd)

	disciplineCmd.Flags().IntVar(&disciplineTop, "top", 5, "number of violations to show")
}

func runDiscipline(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	book, _, err := st.Load()
	if err != nil {
		return err
	}

	if len(book.Closed) == 0 {
		fmt.Println("no closed trades yet")
		return nil
	}

	s := journal.Statistics(book)
	fmt.Printf("avg discipline score: %.1f (%s) over %d trades, win rate %.1f%%\n",
		s.AvgDisciplineScore, journal.Grade(s.AvgDisciplineScore), s.ClosedTrades, s.WinRate)
	fmt.Printf("total discipline loss: %+.0f\n\n", s.TotalDisciplineLoss)

	fmt.Println("by exit reason:")
	for _, r := range journal.ExitReasonBreakdown(book) {
		fmt.Printf("  %-16s %3d trades, avg profit %+.0f\n", r.Reason, r.Count, r.AvgProfit)
	}

	violations := journal.Violations(book)
	if len(violations) == 0 {
		fmt.Println("\nno violations")
		return nil
	}
	if disciplineTop > 0 && len(violations) > disciplineTop {
		violations = violations[:disciplineTop]
	}

	fmt.Printf("\nworst violations (discipline loss below %d):\n", journal.ViolationThreshold)
	for _, v := range violations {
		fmt.Printf("  %s (%s) %s on %s: loss %+.0f, actual %+.0f vs planned %+.0f, score %.0f (%s)\n",
			v.Name, v.Ticker, v.ExitReason, v.ExitDate, v.DisciplineLoss,
			v.ActualProfit, v.PlannedProfit, v.DisciplineScore, v.DisciplineGrade)
		fmt.Printf("    hint: %s\n", journal.Hint(v.ExitReason))
	}
	return nil
}
