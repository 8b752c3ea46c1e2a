package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleVariablesRender(t *testing.T) {
	tests := []struct {
		name   string
		render func(...string) string
	}{
		{"Success", Success.Render},
		{"Warning", Warning.Render},
		{"Error", Error.Render},
		{"Info", Info.Render},
		{"Dim", Dim.Render},
		{"Bold", Bold.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.render("test"))
		})
	}
}

func TestPrefixVariables(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"SuccessPrefix", SuccessPrefix},
		{"WarningPrefix", WarningPrefix},
		{"ErrorPrefix", ErrorPrefix},
		{"ArrowPrefix", ArrowPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.prefix)
		})
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable(
		Column{Name: "WORD", Width: 10},
		Column{Name: "KIND", Width: 12},
	)
	tbl.AddRow("mix", "mix action")
	tbl.AddRow("bake", "timed action")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header, separator, two rows
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "WORD")
	assert.Contains(t, lines[2], "mix")
	assert.Contains(t, lines[3], "bake")
}

func TestTableTruncatesLongValues(t *testing.T) {
	tbl := NewTable(Column{Name: "X", Width: 8})
	tbl.AddRow("averylongvalue")

	out := tbl.Render()
	assert.Contains(t, out, "avery...")
	assert.NotContains(t, out, "averylongvalue")
}

func TestTablePadsShortRows(t *testing.T) {
	tbl := NewTable(
		Column{Name: "A", Width: 4},
		Column{Name: "B", Width: 4},
	)
	tbl.AddRow("x") // second column omitted

	assert.NotPanics(t, func() { tbl.Render() })
}
