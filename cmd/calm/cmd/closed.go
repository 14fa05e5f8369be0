package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var closedCmd = &cobra.Command{
	Use:   "closed",
	Short: "Query the closed-trade ledger",
	Long: `Query and display closed-trade records from the SQLite store.

Subcommands:
  trade  - Get details of a specific closed trade by position id
  today  - List trades closed today
  day    - List trades closed on a specific day

These queries read the database directly and require store.type = sqlite.`,
}

var closedTradeCmd = &cobra.Command{
	Use:   "trade <position-id>",
	Short: "Get details of a specific closed trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runClosedTrade,
}

var closedTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runClosedToday,
}

var closedDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runClosedDay,
}

func init() {
	rootCmd.AddCommand(closedCmd)
	closedCmd.AddCommand(closedTradeCmd)
	closedCmd.AddCommand(closedTodayCmd)
	closedCmd.AddCommand(closedDayCmd)
}

func openSQLite() (*journal.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Store.Type != "sqlite" {
		return nil, fmt.Errorf("closed queries require store.type = sqlite (configured: %s)", cfg.Store.Type)
	}
	return journal.NewSQLite(cfg.Store.Path)
}

func runClosedTrade(cmd *cobra.Command, args []string) error {
	s, err := openSQLite()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.GetClosedTrade(args[0])
	if err != nil {
		return fmt.Errorf("get closed trade: %w", err)
	}

	fmt.Println(journal.FormatClosedOrg(rec))
	return nil
}

func runClosedToday(cmd *cobra.Command, args []string) error {
	return listClosedDay(time.Now().Format("2006-01-02"))
}

func runClosedDay(cmd *cobra.Command, args []string) error {
	return listClosedDay(args[0])
}

func listClosedDay(day string) error {
	start, end, err := dayBounds(day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	s, err := openSQLite()
	if err != nil {
		return err
	}
	defer s.Close()

	recs, err := s.ListClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query closed trades: %w", err)
	}
	if len(recs) == 0 {
		fmt.Printf("no trades closed on %s\n", day)
		return nil
	}

	fmt.Println(journal.FormatLedgerOrg(recs))
	return nil
}

func dayBounds(day string) (string, string, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return "", "", err
	}
	return day, t.AddDate(0, 0, 1).Format("2006-01-02"), nil
}
