package web

import (
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
)

// Transport implements ports.TransportFactory with HTTP clients.
type Transport struct{}

// NewTransport creates a Transport.
func NewTransport() *Transport {
	return &Transport{}
}

// NewFetcher returns a Client configured by cfg.
func (t *Transport) NewFetcher(cfg domain.FetchConfig) ports.DocumentFetcher {
	return NewClient(cfg)
}
