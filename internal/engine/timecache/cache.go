// Package timecache resolves item durations through a bounded persistent cache.
package timecache

import (
	"context"
	"fmt"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache stores resolved durations keyed by item URL.
//
// Entries never expire. When a write would push the store past its budget,
// every entry is dropped before the new one is written.
type Cache struct {
	store  ports.KeyValueStore
	limit  int64
	logger ports.Logger
}

// NewCache creates a Cache over store that keeps at most limit bytes.
func NewCache(store ports.KeyValueStore, limit int64, logger ports.Logger) *Cache {
	return &Cache{
		store:  store,
		limit:  limit,
		logger: logger,
	}
}

// EntrySize is the number of bytes an entry accounts for: key plus value.
func EntrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}

// Get returns the cached duration for url. found is false on a miss.
func (c *Cache) Get(ctx context.Context, url string) (value string, found bool, err error) {
	value, found, err = c.store.Get(ctx, url)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "url", url)
	}
	return value, found, nil
}

// Put writes value for url, clearing the store first when the entry would not fit.
func (c *Cache) Put(ctx context.Context, url, value string) error {
	if err := c.makeRoom(ctx, EntrySize(url, value)); err != nil {
		return err
	}
	if err := c.store.Set(ctx, url, value); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "url", url)
	}
	return nil
}

// Stats reports the bytes in use and the budget.
func (c *Cache) Stats(ctx context.Context) (used, limit int64, err error) {
	used, err = c.store.BytesInUse(ctx)
	if err != nil {
		return 0, c.limit, zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
	}
	return used, c.limit, nil
}

// Clear drops every entry.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	return nil
}

func (c *Cache) makeRoom(ctx context.Context, size int64) error {
	used, err := c.store.BytesInUse(ctx)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
	}
	if used+size <= c.limit {
		return nil
	}

	c.logger.Info(fmt.Sprintf("duration cache full (%d + %d > %d bytes), clearing", used, size, c.limit))
	return c.Clear(ctx)
}
