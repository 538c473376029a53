package main

import (
	"os"

	"github.com/SscSPs/property_finance/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
