package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/ui/grid"
)

const helpText = "s sort by time · ↑/↓ scroll · q quit"

// View renders the UI.
func (m *Model) View() string {
	cells := grid.Cells(m.Table, m.State)
	widths := grid.Widths(cells)

	lines := make(map[*domain.Row]string, len(m.Table.Rows))
	for i, r := range m.Table.Rows {
		lines[r] = grid.Line(cells[i], widths)
	}

	var s strings.Builder
	s.WriteString(m.title() + "\n\n")

	if h := m.Header(); h != nil {
		s.WriteString("  " + headerStyle.Render(lines[h]) + "\n")
	}

	body := m.Body()
	start, end := m.window(len(body))
	for i := start; i < end; i++ {
		row := body[i]
		line := lines[row]

		cursor := "  "
		switch {
		case i == m.Selected:
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		case row.Marked:
			line = stripeStyle.Render(line)
		}
		s.WriteString(cursor + line + "\n")
	}

	position := fmt.Sprintf(" · %d/%d", min(m.Selected+1, len(body)), len(body))
	s.WriteString("\n" + helpStyle.Render(helpText+position))
	return s.String()
}

func (m *Model) title() string {
	label := "WISHLIST"
	if desc, ok := m.State.Applied(); ok {
		if desc {
			label += " · longest first"
		} else {
			label += " · shortest first"
		}
	}
	return titleStyle.Render(label)
}

func (m *Model) window(n int) (start, end int) {
	if m.Height <= 0 {
		return 0, n
	}
	start = min(m.Offset, n)
	end = min(start+m.Height, n)
	return start, end
}
