package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/carimus/metrolink/internal/cli"
	"github.com/carimus/metrolink/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "METROLINK",
		Section: "1",
		Source:  "metrolink " + version.Version,
		Manual:  "metrolink manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
