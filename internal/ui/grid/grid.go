// Package grid lays wishlist rows out as aligned text columns.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/ui/style"
)

// Gap separates adjacent columns.
const Gap = "  "

// Cells returns the trimmed display text of every row of t. The header's
// time cell carries the sort arrow once the table has been sorted.
func Cells(t *domain.Table, state *domain.SortState) [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		line := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			line[j] = strings.TrimSpace(c)
		}
		if state != nil && t.IsHeader(row) {
			if desc, ok := state.Applied(); ok {
				line[t.TimeColumn] += " " + style.SortArrow(desc)
			}
		}
		out[i] = line
	}
	return out
}

// Widths returns the display width of the widest cell in each column.
func Widths(cells [][]string) []int {
	var widths []int
	for _, line := range cells {
		for j, c := range line {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	return widths
}

// Line joins one row's cells, padding all but the last to the column width.
func Line(line []string, widths []int) string {
	var b strings.Builder
	for j, c := range line {
		if j > 0 {
			b.WriteString(Gap)
		}
		b.WriteString(c)
		if j < len(line)-1 && j < len(widths) {
			b.WriteString(strings.Repeat(" ", max(widths[j]-lipgloss.Width(c), 0)))
		}
	}
	return b.String()
}
