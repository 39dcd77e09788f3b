package ui

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders bundled markdown documents with glamour
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to custom style
	Width int    // 0 = glamour default
}

// NewMarkdownRenderer picks a glamour style matching format: plain text
// gets the notty style, everything else auto-detects.
func NewMarkdownRenderer(format Format, w io.Writer, width int) *MarkdownRenderer {
	style := "auto"
	if format.Resolve(w) == FormatText {
		style = "notty"
	}
	return &MarkdownRenderer{Style: style, Width: width}
}

// Render converts markdown into terminal output. On renderer failure the
// source is returned unchanged.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
