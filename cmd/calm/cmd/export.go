package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/config"
	"github.com/rustyeddy/calm/journal"
	"github.com/rustyeddy/calm/workbook"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the journal as a workbook, CSV files or an Org document",
	Long: `Export the current journal.

Formats:
  xlsx  two-sheet workbook, optionally with recompute formulas (default)
  csv   positions.csv and closed.csv inside the given directory
  org   Org-mode blocks for every closed trade

When no path is given the file goes to export.output_dir from the
configuration. The --formulas flag overrides export.formulas.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFormat   string
	exportFormulas bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "export format: xlsx, csv or org")
	exportCmd.Flags().BoolVar(&exportFormulas, "formulas", true, "embed recompute formulas in the positions sheet")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStoreFrom(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	book, _, err := st.Load()
	if err != nil {
		return err
	}
	if len(book.Positions) == 0 && len(book.Closed) == 0 {
		return fmt.Errorf("nothing to export: the journal is empty")
	}

	withFormulas := effectiveFormulas(cmd.Flags().Changed("formulas"), exportFormulas, cfg)
	path := exportTarget(cfg, args, exportFormat)

	switch exportFormat {
	case "xlsx":
		if err := workbook.Write(path, book, withFormulas); err != nil {
			return err
		}
	case "csv":
		if err := os.MkdirAll(path, 0755); err != nil {
			return err
		}
		e, err := journal.NewCSV(filepath.Join(path, "positions.csv"), filepath.Join(path, "closed.csv"))
		if err != nil {
			return err
		}
		if err := e.WriteBook(book); err != nil {
			e.Close()
			return err
		}
		if err := e.Close(); err != nil {
			return err
		}
	case "org":
		if err := os.WriteFile(path, []byte(journal.FormatLedgerOrg(book.Closed)+"\n"), 0644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}

	fmt.Printf("exported %d open positions and %d closed trades to %s\n",
		len(book.Positions), len(book.Closed), path)
	return nil
}

// effectiveFormulas prefers an explicit --formulas flag over the configured
// default.
func effectiveFormulas(flagSet, flag bool, cfg *config.Config) bool {
	if flagSet {
		return flag
	}
	return cfg.Export.Formulas
}

// exportTarget resolves the output path: an explicit argument wins, else a
// format-dependent name inside the configured output directory.
func exportTarget(cfg *config.Config, args []string, format string) string {
	if len(args) == 1 {
		return args[0]
	}
	dir := cfg.Export.OutputDir
	if dir == "" {
		dir = "."
	}
	switch format {
	case "csv":
		return dir
	case "org":
		return filepath.Join(dir, "calm.org")
	default:
		return filepath.Join(dir, "calm.xlsx")
	}
}
