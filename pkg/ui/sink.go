// Package ui renders metrolink's human-facing output: developer warnings,
// tables of discovered links and bundled markdown documents.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// List is a titled bullet list inside a Notice
type List struct {
	Title string
	Items []string
}

// Notice is one diagnostic: a headline followed by optional paragraphs and
// bullet lists, rendered in that order.
type Notice struct {
	Headline   string
	Paragraphs []string
	Lists      []List
}

// Sink receives diagnostics meant for the developer.
type Sink interface {
	Warn(n Notice)
	Info(msg string)
}

// Discard drops everything
var Discard Sink = discard{}

type discard struct{}

func (discard) Warn(Notice)  {}
func (discard) Info(string) {}

// ConsoleSink writes styled diagnostics to a writer
type ConsoleSink struct {
	w      io.Writer
	styles styles
}

// NewConsoleSink creates a sink writing to w. FormatAuto colors output only
// when w is a color-capable terminal.
func NewConsoleSink(w io.Writer, format Format) *ConsoleSink {
	return &ConsoleSink{w: w, styles: newStyles(newRenderer(w, format))}
}

// Warn renders a notice with a warning headline
func (s *ConsoleSink) Warn(n Notice) {
	var b strings.Builder

	b.WriteString(s.styles.warning.Render("Warning: " + n.Headline))
	b.WriteString("\n")

	for _, p := range n.Paragraphs {
		b.WriteString("\n")
		b.WriteString(p)
		b.WriteString("\n")
	}

	for _, l := range n.Lists {
		b.WriteString("\n")
		if l.Title != "" {
			b.WriteString(s.styles.title.Render(l.Title))
			b.WriteString("\n")
		}
		for _, item := range l.Items {
			b.WriteString("  - ")
			b.WriteString(s.styles.path.Render(item))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	_, _ = fmt.Fprint(s.w, b.String())
}

// Info renders a muted single-line message
func (s *ConsoleSink) Info(msg string) {
	_, _ = fmt.Fprintln(s.w, s.styles.muted.Render(msg))
}

// Error renders err as a single red line
func (s *ConsoleSink) Error(err error) {
	_, _ = fmt.Fprintln(s.w, s.styles.error.Render(fmt.Sprintf("Error: %v", err)))
}
