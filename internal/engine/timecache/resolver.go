package timecache

import (
	"context"

	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/wltime/internal/markup"
)

// Resolver reads an item's runtime text from its detail page.
type Resolver struct {
	fetcher     ports.DocumentFetcher
	markerClass string
}

// NewResolver creates a Resolver that looks for the first element carrying markerClass.
func NewResolver(fetcher ports.DocumentFetcher, markerClass string) *Resolver {
	return &Resolver{
		fetcher:     fetcher,
		markerClass: markerClass,
	}
}

// Resolve fetches url once and returns the marker element's text verbatim.
// A page without the marker yields "".
func (r *Resolver) Resolve(ctx context.Context, url string) (string, error) {
	doc, err := r.fetcher.FetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	node := markup.FindFirst(doc, markup.HasClass(r.markerClass))
	if node == nil {
		return "", nil
	}
	return markup.TextContent(node), nil
}
