package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Portfolio statistics over open positions and the ledger",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	book, _, err := st.Load()
	if err != nil {
		return err
	}

	s := journal.Statistics(book)

	fmt.Printf("open positions:        %d\n", s.OpenPositions)
	fmt.Printf("total investment:      %.0f\n", s.TotalInvestment)
	fmt.Printf("closed trades:         %d\n", s.ClosedTrades)
	fmt.Printf("win rate:              %.1f%%\n", s.WinRate)
	fmt.Printf("total profit:          %+.0f\n", s.TotalProfit)
	fmt.Printf("avg discipline score:  %.1f (%s)\n", s.AvgDisciplineScore, journal.Grade(s.AvgDisciplineScore))
	fmt.Printf("total discipline loss: %+.0f\n", s.TotalDisciplineLoss)
	return nil
}
