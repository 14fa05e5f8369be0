package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/workbook"
)

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Replace the journal with the contents of a workbook",
	Long: `Import a two-sheet journal workbook. The open-positions sheet may be named
either 포지션목록 or 포지션목록_템플릿; closed trades come from 청산기록.

Import is lenient: rows are never rejected, missing fields default, and any
per-field problems are printed as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	book, err := workbook.Read(args[0])
	if err != nil {
		return err
	}

	for _, p := range book.Positions {
		for _, issue := range p.Validate() {
			fmt.Printf("warning: position %s: %s: %s\n", p.ID, issue.Field, issue.Reason)
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(book, stamp()); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("imported %d open positions and %d closed trades from %s\n",
		len(book.Positions), len(book.Closed), args[0])
	return nil
}
