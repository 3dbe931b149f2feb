// Package tui provides an interactive, sortable view of a wishlist table.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/wltime/internal/core/domain"
)

// chromeHeight is the number of lines around the row window:
// title, blank, header, blank, help.
const chromeHeight = 5

// Model is the bubbletea model of the table view.
type Model struct {
	Table *domain.Table
	State *domain.SortState
	// Selected is the cursor position among the body rows.
	Selected int
	// Offset is the first body row in the window.
	Offset int
	// Height is the number of body rows that fit on screen; 0 shows all.
	Height int
	Width  int
}

// NewModel creates a Model over t. A nil state starts ascending.
func NewModel(t *domain.Table, state *domain.SortState) *Model {
	if state == nil {
		state = &domain.SortState{}
	}
	return &Model{Table: t, State: state}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Header returns the table's header row, if any.
func (m *Model) Header() *domain.Row {
	for _, r := range m.Table.Rows {
		if m.Table.IsHeader(r) {
			return r
		}
	}
	return nil
}

// Body returns the non-header rows in display order.
func (m *Model) Body() []*domain.Row {
	body := make([]*domain.Row, 0, len(m.Table.Rows))
	for _, r := range m.Table.Rows {
		if !m.Table.IsHeader(r) {
			body = append(body, r)
		}
	}
	return body
}

func (m *Model) move(delta int) {
	n := len(m.Body())
	if n == 0 {
		return
	}
	m.Selected = min(max(m.Selected+delta, 0), n-1)
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.Height <= 0 {
		m.Offset = 0
		return
	}
	if m.Selected < m.Offset {
		m.Offset = m.Selected
	} else if m.Selected >= m.Offset+m.Height {
		m.Offset = m.Selected - m.Height + 1
	}
}

func (m *Model) page() int {
	return max(m.Height, 1)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if cmd := m.handleKey(string(r)); cmd != nil {
					return m, cmd
				}
			}
			return m, nil
		}
		return m, m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "s", "t":
		m.State.Toggle(m.Table)
	case "k", "up":
		m.move(-1)
	case "j", "down":
		m.move(1)
	case "pgup", "b":
		m.move(-m.page())
	case "pgdown", "f", " ":
		m.move(m.page())
	case "g", "home":
		m.move(-len(m.Table.Rows))
	case "G", "end":
		m.move(len(m.Table.Rows))
	}
	return nil
}
