package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var closeCmd = &cobra.Command{
	Use:   "close <position-id> <exit-price>",
	Short: "Close an open position and record the outcome",
	Long: `Close an open position: the position is removed from the open set and an
immutable closed-trade record is appended to the ledger, with the discipline
metrics computed against the plan.

The --planned price is the counterfactual "what the plan said" exit used for
the discipline loss; it defaults to the position's target price.

Exit reasons: GoalReached, EarlyProfitTake, StopLossHit, EarlyStopLoss
(the workbook labels 목표달성, 조기익절, 손절, 조기손절 are also accepted).`,
	Args: cobra.ExactArgs(2),
	RunE: runClose,
}

var (
	closeReason  string
	closePlanned float64
)

func init() {
	rootCmd.AddCommand(closeCmd)

	closeCmd.Flags().StringVarP(&closeReason, "reason", "r", string(journal.GoalReached), "exit reason")
	closeCmd.Flags().Float64VarP(&closePlanned, "planned", "p", 0, "planned exit price (default: target price)")
}

func runClose(cmd *cobra.Command, args []string) error {
	exitPrice, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("exit price: %w", err)
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

	planned := closePlanned
	if planned == 0 {
		if p, ok := book.Find(args[0]); ok {
			planned = p.TargetPrice
		}
	}

	ct, err := book.Close(args[0], exitPrice, journal.ParseExitReason(closeReason), planned, time.Now())
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			return fmt.Errorf("no open position %q", args[0])
		}
		return err
	}

	if err := st.Save(book, stamp()); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("closed %s (%s) after %d days\n", ct.Name, ct.Ticker, ct.ActualHoldingDays)
	fmt.Printf("  return:          %+.2f%%\n", ct.ActualReturnPct)
	fmt.Printf("  profit:          %+.0f\n", ct.ActualProfit)
	fmt.Printf("  planned profit:  %+.0f\n", ct.PlannedProfit)
	fmt.Printf("  discipline loss: %+.0f\n", ct.DisciplineLoss)
	fmt.Printf("  discipline:      %.1f (%s)\n", ct.DisciplineScore, ct.DisciplineGrade)
	return nil
}
