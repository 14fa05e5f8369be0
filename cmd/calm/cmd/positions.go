package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List open positions with plan progress",
	Args:  cobra.NoArgs,
	RunE:  runPositions,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	book, lastUpdate, err := st.Load()
	if err != nil {
		return err
	}

	if len(book.Positions) == 0 {
		fmt.Println("no open positions")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENTRY\tCURRENT\tTARGET\tRETURN\tPROGRESS\tEXIT")
	for _, p := range book.Positions {
		ret := (p.CurrentPrice/p.EntryPrice - 1) * 100
		progress := 0.0
		if p.TargetPrice != 0 {
			progress = p.CurrentPrice / p.TargetPrice * 100
		}
		fmt.Fprintf(w, "%s\t%s (%s)\t%.0f\t%.0f\t%.0f\t%+.2f%%\t%.1f%%\t%s\n",
			p.ID, p.Name, p.Ticker, p.EntryPrice, p.CurrentPrice,
			p.TargetPrice, ret, progress, ddayText(p.PlannedExitDate, now))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if lastUpdate != "" {
		fmt.Printf("\nlast update: %s\n", lastUpdate)
	}
	return nil
}

func ddayText(plannedExitDate string, now time.Time) string {
	d, ok := journal.DDay(plannedExitDate, now)
	switch {
	case !ok:
		return "-"
	case d < 0:
		return "past due"
	case d == 0:
		return "due today"
	default:
		return fmt.Sprintf("D-%d", d)
	}
}
