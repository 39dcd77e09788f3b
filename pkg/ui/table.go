package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// WriteTable renders rows under header as an aligned table. Text output
// drops pterm's styling.
func WriteTable(w io.Writer, format Format, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if format.Resolve(w) == FormatText {
		table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}

	out, err := table.Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
