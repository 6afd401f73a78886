// Package edgar implements the SEC EDGAR retrieval pipeline: ticker
// resolution, filing catalog fetching, time/type filtering, and document
// URL construction.
//
// No API key is required. EDGAR demands a contact-style User-Agent on
// every request and roughly 10 requests/second per agent; the client
// enforces a minimum inter-request gap instead of bursting.
// Docs: https://www.sec.gov/edgar/sec-api-documentation
package edgar

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/seenimoa/filinglens/internal/config"
	"github.com/seenimoa/filinglens/internal/infra"
)

// Service ties the rate-limited client to the memoizing fetch operations.
// All operations are synchronous and blocking; the TTL cache is the only
// shared state, written whole-value per key.
type Service struct {
	cfg    config.EdgarConfig
	client *Client
	cache  *infra.Cache
	group  singleflight.Group
}

// ServiceOption allows for customization of the service.
type ServiceOption func(*Service)

// WithClient replaces the default rate-limited client.
func WithClient(client *Client) ServiceOption {
	return func(s *Service) { s.client = client }
}

// WithCache replaces the default TTL cache.
func WithCache(cache *infra.Cache) ServiceOption {
	return func(s *Service) { s.cache = cache }
}

// NewService creates the EDGAR pipeline service from configuration.
func NewService(cfg config.EdgarConfig, options ...ServiceOption) *Service {
	s := &Service{
		cfg: cfg,
		client: NewClient(
			WithUserAgent(cfg.UserAgent),
			WithRequestGap(cfg.RequestGap()),
			WithRetryBackoff(cfg.RetryBackoff()),
		),
		cache: infra.NewCache(cfg.CacheTTL()),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Client exposes the underlying rate-limited client so collaborators
// (e.g. the metrics extractor) share the same politeness policy.
func (s *Service) Client() *Client { return s.client }

// ArchiveBase returns the filing document archive base URL.
func (s *Service) ArchiveBase() string { return s.cfg.ArchiveBase }

// Ping verifies connectivity to EDGAR by fetching a known submissions
// document (Apple's).
func (s *Service) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/CIK0000320193.json", s.cfg.SubmissionsBase)
	if _, err := s.client.Fetch(ctx, url); err != nil {
		return fmt.Errorf("edgar ping: %w", err)
	}
	return nil
}
