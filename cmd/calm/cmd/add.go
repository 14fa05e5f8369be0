package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
	"github.com/rustyeddy/calm/pkg/id"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new open position",
	Long: `Record a new open position with its entry terms and exit plan.

Investment and the planned exit date are derived from the entry terms when
not supplied. Field problems are reported as warnings; the position is
recorded anyway so a half-filled plan is never lost.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var addPos journal.Position

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addPos.ID, "id", "", "position id (generated when omitted)")
	addCmd.Flags().StringVar(&addPos.Ticker, "ticker", "", "ticker symbol")
	addCmd.Flags().StringVar(&addPos.Name, "name", "", "instrument name")
	addCmd.Flags().StringVar(&addPos.Strategy, "strategy", "", "strategy tag")
	addCmd.Flags().StringVar(&addPos.EntryDate, "entry-date", "", "entry date YYYY-MM-DD (default today)")
	addCmd.Flags().Float64Var(&addPos.EntryPrice, "entry-price", 0, "entry price")
	addCmd.Flags().Float64Var(&addPos.Quantity, "quantity", 0, "quantity")
	addCmd.Flags().Float64Var(&addPos.TargetPrice, "target", 0, "target price")
	addCmd.Flags().Float64Var(&addPos.StopPrice, "stop", 0, "stop price")
	addCmd.Flags().IntVar(&addPos.PlannedHoldingDays, "days", 0, "planned holding days")
	addCmd.Flags().Float64Var(&addPos.ExpectedReturnPct, "expected-return", 0, "expected return percent")
	addCmd.Flags().Float64Var(&addPos.BacktestWinRatePct, "win-rate", 0, "backtest win rate percent")
	addCmd.Flags().StringVar(&addPos.EntryReason, "reason", "", "entry reason")
}

func runAdd(cmd *cobra.Command, args []string) error {
	p := addPos
	if p.ID == "" {
		p.ID = id.New()
	}
	if p.EntryDate == "" {
		p.EntryDate = time.Now().UTC().Format("2006-01-02")
	}
	p.EntryDate = journal.NormalizeDate(p.EntryDate)
	p.Investment = p.EntryPrice * p.Quantity
	if p.PlannedExitDate == "" && p.PlannedHoldingDays > 0 {
		if entry, err := time.Parse("2006-01-02", p.EntryDate); err == nil {
			p.PlannedExitDate = entry.AddDate(0, 0, p.PlannedHoldingDays).Format("2006-01-02")
		}
	}
	if p.Status == "" {
		p.Status = journal.StatusHolding
	}
	if p.CurrentPrice == 0 {
		p.CurrentPrice = p.EntryPrice
	}

	for _, issue := range p.Validate() {
		fmt.Printf("warning: %s: %s\n", issue.Field, issue.Reason)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	book, _, err := st.Load()
	if err != nil {
		return err
	}
	if _, exists := book.Find(p.ID); exists {
		return fmt.Errorf("position %q already exists", p.ID)
	}
	book.Add(p)

	if err := st.Save(book, stamp()); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("added position %s (%s %s)\n", p.ID, p.Name, p.Ticker)
	return nil
}
