// Package linear prints a wishlist table as aligned plain-text columns.
package linear

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/ui/grid"
	"go.trai.ch/wltime/internal/ui/output"
	"go.trai.ch/wltime/internal/ui/style"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer for pipes and CI logs.
type Renderer struct {
	out    io.Writer
	header lipgloss.Style
	stripe lipgloss.Style
	plain  lipgloss.Style
}

// NewRenderer creates a Renderer writing to w, or stdout when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return NewRendererWithProfile(w, output.Profile(w))
}

// NewRendererWithProfile creates a Renderer with a fixed color profile.
func NewRendererWithProfile(w io.Writer, p termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w, termenv.WithProfile(p))
	lg.SetColorProfile(p)
	if !output.IsTerminal(w) {
		lg.SetHasDarkBackground(true)
	}
	return &Renderer{
		out:    w,
		header: lg.NewStyle().Bold(true).Foreground(style.Iris),
		stripe: lg.NewStyle().Background(style.Stripe),
		plain:  lg.NewStyle(),
	}
}

// Render writes t once. The sort state only contributes the header arrow.
func (r *Renderer) Render(ctx context.Context, t *domain.Table, state *domain.SortState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cells := grid.Cells(t, state)
	widths := grid.Widths(cells)

	w := bufio.NewWriter(r.out)
	for i, row := range t.Rows {
		st := r.plain
		switch {
		case t.IsHeader(row):
			st = r.header
		case row.Marked:
			st = r.stripe
		}
		if _, err := w.WriteString(st.Render(grid.Line(cells[i], widths)) + "\n"); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
	}
	if err := w.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}
