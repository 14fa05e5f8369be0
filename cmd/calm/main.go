package main

import (
	"os"

	"github.com/rustyeddy/calm/cmd/calm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
