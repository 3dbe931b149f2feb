package ports

import (
	"context"

	"go.trai.ch/wltime/internal/core/domain"
)

// RowSource produces the wishlist table the durations are attached to.
//
//go:generate mockgen -source=row_source.go -destination=mocks/mock_row_source.go -package=mocks
type RowSource interface {
	// LoadTable reads the wishlist at location, which is either a URL or a local file path.
	// The returned table already contains the header's time cell.
	LoadTable(ctx context.Context, location string) (*domain.Table, error)
}
