package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/config"
	"github.com/rustyeddy/calm/journal"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "calm",
	Short: "A discipline-first trading journal",
	Long: `Calm tracks discretionary positions from entry to exit and scores how
faithfully each exit followed the pre-committed plan.

It provides tools for:
  - Importing and exporting the two-sheet journal workbook
  - Recording entries, price updates and exits
  - Portfolio statistics and win rate
  - Discipline scoring, grading and violation review`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./calm.yaml)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat("./calm.yaml"); err == nil {
		return config.LoadFromFile("./calm.yaml")
	}
	return config.Default(), nil
}

func openStore() (journal.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openStoreFrom(cfg)
}

func openStoreFrom(cfg *config.Config) (journal.Store, error) {
	switch cfg.Store.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Store.Path)
	default:
		return journal.NewJSONStore(cfg.Store.Path), nil
	}
}

func stamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
