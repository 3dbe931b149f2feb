// Package web fetches and interprets wishlist and item pages.
package web

import (
	"context"
	"net/http"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// Client implements ports.DocumentFetcher over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a Client from cfg.
func NewClient(cfg domain.FetchConfig) *Client {
	return newClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func newClientWithHTTP(cfg domain.FetchConfig, hc *http.Client) *Client {
	c := &Client{
		httpClient: hc,
		userAgent:  cfg.UserAgent,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	}
	return c
}

// FetchDocument issues one GET for url and parses the response body as HTML.
// Transport failures and non-2xx responses are reported as domain.ErrNetwork.
func (c *Client) FetchDocument(ctx context.Context, url string) (*html.Node, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrNetwork.Error()), "url", url)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequestBuildFailed.Error()), "url", url)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNetwork.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		netErr := zerr.With(domain.ErrNetwork, "status", resp.Status)
		return nil, zerr.With(netErr, "url", url)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "url", url)
	}
	return doc, nil
}
