package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Columns are padded to the widest visible cell, so styled cells align
// with plain ones. A table with no rows renders empty as a dim note.
func RenderTable(headers []string, rows [][]string, empty string) string {
	if len(headers) == 0 {
		return ""
	}
	if len(rows) == 0 && empty != "" {
		return Dim(empty) + "\n"
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == cols-1)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(&b, cell, lipgloss.Width(cell), widths[i], i == cols-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeCell(b *strings.Builder, cell string, visible, width int, last bool) {
	b.WriteString(cell)
	if last {
		return
	}
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad+colGap))
}
