package timecache

import (
	"context"
	"fmt"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Repository implements ports.DurationProvider with a cache-aside read and a
// write-through fill.
type Repository struct {
	cache    *Cache
	resolver *Resolver
	tracer   ports.Tracer
	logger   ports.Logger
	group    *singleflight.Group
}

// Option configures a Repository.
type Option func(*Repository)

// WithCoalescing makes concurrent misses for the same URL share one fetch.
// Without it every miss issues its own request.
func WithCoalescing() Option {
	return func(r *Repository) {
		r.group = &singleflight.Group{}
	}
}

// NewRepository creates a Repository.
func NewRepository(
	cache *Cache,
	resolver *Resolver,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Repository {
	r := &Repository{
		cache:    cache,
		resolver: resolver,
		tracer:   tracer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetDuration returns the runtime text for url from the cache, fetching and
// caching it on a miss.
func (r *Repository) GetDuration(ctx context.Context, url string) (string, error) {
	ctx, span := r.tracer.Start(ctx, domain.LookupSpanName, ports.WithAttribute(domain.AttrURL, url))
	defer span.End()

	value, found, err := r.cache.Get(ctx, url)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute(domain.AttrCacheHit, found)
	if found {
		r.logger.Debug("cache hit: " + url)
		return value, nil
	}
	r.logger.Debug("cache miss: " + url)

	if r.group == nil {
		value, err = r.fill(ctx, url)
	} else {
		var v any
		v, err, _ = r.group.Do(url, func() (any, error) {
			return r.fill(ctx, url)
		})
		value, _ = v.(string)
	}
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return value, nil
}

func (r *Repository) fill(ctx context.Context, url string) (string, error) {
	value, err := r.resolver.Resolve(ctx, url)
	if err != nil {
		return "", err
	}
	if err := r.cache.Put(ctx, url, value); err != nil {
		r.logger.Warn(fmt.Sprintf("could not cache duration for %s: %v", url, err))
	}
	return value, nil
}
