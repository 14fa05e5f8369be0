package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/calm/journal"
)

var priceCmd = &cobra.Command{
	Use:   "price <position-id> <price>",
	Short: "Update the current price of an open position",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("price: %w", err)
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

	if err := book.UpdatePrice(args[0], price); err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			return fmt.Errorf("no open position %q", args[0])
		}
		return err
	}

	if err := st.Save(book, stamp()); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("position %s current price set to %s\n", args[0], args[1])
	return nil
}
