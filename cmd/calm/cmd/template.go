package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/workbook"
)

var templateCmd = &cobra.Command{
	Use:   "template <workbook.xlsx>",
	Short: "Write a starter workbook with sample rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := workbook.WriteTemplate(args[0]); err != nil {
			return err
		}
		fmt.Printf("wrote template workbook to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
