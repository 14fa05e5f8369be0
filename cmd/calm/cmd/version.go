package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the calm CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calm version %s\n", version)
		fmt.Println("A discipline-first trading journal")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
