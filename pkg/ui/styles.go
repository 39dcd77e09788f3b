package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B8860B", // Dark amber
		Dark:  "#FFD54F",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}
)

// styles is the set of lipgloss styles bound to one output
type styles struct {
	warning lipgloss.Style
	error   lipgloss.Style
	title   lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		title:   r.NewStyle().Bold(true),
		path:    r.NewStyle().Foreground(PathColor),
		muted:   r.NewStyle().Foreground(MutedColor),
	}
}

// newRenderer binds a lipgloss renderer to w. Text output is forced to the
// ASCII profile so no escape sequences are written.
func newRenderer(w io.Writer, format Format) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch format.Resolve(w) {
	case FormatText:
		r.SetColorProfile(termenv.Ascii)
	case FormatTerminal:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	}
	return r
}
