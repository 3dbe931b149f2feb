package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/ui/output"
	"go.trai.ch/zerr"
)

// Renderer runs the table view as a ports.Renderer.
type Renderer struct {
	out  io.Writer
	opts []tea.ProgramOption
}

// NewRenderer creates a Renderer drawing to out, or stdout when out is nil.
// opts are applied after the defaults.
func NewRenderer(out io.Writer, opts ...tea.ProgramOption) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out, opts: opts}
}

// Render blocks until the user quits or ctx is canceled.
func (r *Renderer) Render(ctx context.Context, t *domain.Table, state *domain.SortState) error {
	lipgloss.SetColorProfile(output.Profile(r.out))

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(r.out),
		tea.WithAltScreen(),
	}, r.opts...)

	if _, err := tea.NewProgram(NewModel(t, state), opts...).Run(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}
