package ports

import (
	"context"

	"go.trai.ch/wltime/internal/core/domain"
)

// Renderer presents a wishlist table.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render shows the table. Interactive renderers block until the user quits
	// and re-sort the table through state.
	Render(ctx context.Context, table *domain.Table, state *domain.SortState) error
}
