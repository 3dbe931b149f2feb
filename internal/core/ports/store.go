// Package ports defines the core interfaces for the application.
package ports

import "context"

// KeyValueStore is the durable storage primitive behind the duration cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type KeyValueStore interface {
	// Get returns the value stored under key.
	// found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// BytesInUse reports how many bytes the stored keys and values occupy.
	BytesInUse(ctx context.Context) (int64, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
