package web

import (
	"net/http"

	"go.trai.ch/wltime/internal/core/domain"
)

// NewClientWithHTTPForTest builds a Client around a custom http.Client.
func NewClientWithHTTPForTest(cfg domain.FetchConfig, hc *http.Client) *Client {
	return newClientWithHTTP(cfg, hc)
}
