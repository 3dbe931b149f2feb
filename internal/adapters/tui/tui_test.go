package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/wltime/internal/adapters/tui"
	"go.trai.ch/wltime/internal/core/domain"
)

func wishlist() *domain.Table {
	return &domain.Table{
		TimeColumn: 1,
		Rows: []*domain.Row{
			{Cells: []string{"Title", "Time"}},
			{Cells: []string{"Alpha", "2 hr"}, Link: "https://example.com/a"},
			{Cells: []string{"Beta", "45 min"}, Link: "https://example.com/b"},
			{Cells: []string{"Gamma"}, Link: "https://example.com/g"},
			{Cells: []string{"Delta", "1 hr 5 min"}, Link: "https://example.com/d"},
		},
	}
}

func newModel(t *testing.T) *tui.Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	return tui.NewModel(wishlist(), nil)
}

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func bodyTitles(m *tui.Model) []string {
	var out []string
	for _, r := range m.Body() {
		out = append(out, r.Cells[0])
	}
	return out
}
