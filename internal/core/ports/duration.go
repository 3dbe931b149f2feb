package ports

import "context"

// DurationProvider resolves the runtime text of a catalog item.
//
//go:generate mockgen -source=duration.go -destination=mocks/mock_duration.go -package=mocks
type DurationProvider interface {
	// GetDuration returns the runtime text for the item at url.
	GetDuration(ctx context.Context, url string) (string, error)
}
