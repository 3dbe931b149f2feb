package ports

import (
	"context"

	"go.trai.ch/wltime/internal/core/domain"
)

// StoreOpener opens the KeyValueStore selected by a store configuration.
//
//go:generate mockgen -source=store_opener.go -destination=mocks/mock_store_opener.go -package=mocks
type StoreOpener interface {
	// Open connects to or creates the configured store. The caller closes it.
	Open(ctx context.Context, cfg domain.StoreConfig) (KeyValueStore, error)
}
