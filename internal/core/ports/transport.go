package ports

import "go.trai.ch/wltime/internal/core/domain"

// TransportFactory builds document fetchers for a fetch configuration.
//
//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type TransportFactory interface {
	NewFetcher(cfg domain.FetchConfig) DocumentFetcher
}
