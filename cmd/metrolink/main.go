package main

import (
	"os"

	"github.com/carimus/metrolink/internal/cli"
	"github.com/carimus/metrolink/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.NewConsoleSink(os.Stderr, ui.FormatAuto).Error(err)
		os.Exit(1)
	}
}
