package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/internal/adapters/tui"
	"go.trai.ch/wltime/internal/core/domain"
)

func newRenderer(input string) *tui.Renderer {
	return tui.NewRenderer(
		io.Discard,
		tea.WithInput(strings.NewReader(input)),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_SortThenQuit(t *testing.T) {
	tbl := wishlist()
	var state domain.SortState

	require.NoError(t, newRenderer("sq").Render(context.Background(), tbl, &state))

	assert.True(t, state.Descending)
	assert.Equal(t, "Gamma", tbl.Rows[1].Cells[0])
	assert.Equal(t, "Alpha", tbl.Rows[4].Cells[0])
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newRenderer("").Render(ctx, wishlist(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRenderFailed.Error())
}

func TestNewRenderer_NilWriter(t *testing.T) {
	assert.NotNil(t, tui.NewRenderer(nil))
}
