package ports

import (
	"context"

	"golang.org/x/net/html"
)

// DocumentFetcher retrieves and parses a remote HTML document.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type DocumentFetcher interface {
	// FetchDocument issues a single GET for url and returns the parsed document.
	// Transport failures are reported as domain.ErrNetwork.
	FetchDocument(ctx context.Context, url string) (*html.Node, error)
}
