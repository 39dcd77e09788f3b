package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carimus/metrolink/pkg/ui"
)

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewMarkdownRenderer(ui.FormatAuto, &buf, 60)
	assert.Equal(t, "notty", r.Style)

	out := r.Render("# Linked dependencies\n\nMetro does not follow symlinks.\n")
	assert.Contains(t, out, "Linked dependencies")
	assert.Contains(t, out, "Metro does not follow symlinks.")
}

func TestMarkdownRenderer_BadStyleFallsBack(t *testing.T) {
	r := &ui.MarkdownRenderer{Style: "/does/not/exist.json"}
	src := "# Title\n"
	assert.Equal(t, src, r.Render(src))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := ui.WriteTable(&buf, ui.FormatText, []string{"Link", "Target"}, [][]string{
		{"node_modules/lib-a", "/work/lib-a"},
		{"node_modules/@scope/lib-b", "/work/lib-b"},
	})
	assert.NoError(t, err)

	out := buf.String()
	for _, s := range []string{"Link", "Target", "node_modules/@scope/lib-b", "/work/lib-a"} {
		assert.Contains(t, out, s)
	}
	assert.Less(t, strings.Index(out, "Link"), strings.Index(out, "lib-a"))
}
