package providers

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls, shared across both resources.
type rateLimitedProvider struct {
	next      DataProvider
	interval  time.Duration
	ticker    *time.Ticker
	logger    *slog.Logger
	closeOnce sync.Once
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid hammering a struggling origin.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, id string) ([]games.Record, error) {
	if err := p.wait(ctx, "games"); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, id)
}

func (p *rateLimitedProvider) FetchCollections(ctx context.Context, id string) ([]collections.Record, error) {
	if err := p.wait(ctx, "collections"); err != nil {
		return nil, err
	}
	return p.next.FetchCollections(ctx, id)
}

func (p *rateLimitedProvider) wait(ctx context.Context, resource string) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"), slog.String("resource", resource))
		}
		return ctx.Err()
	case <-p.ticker.C:
	}
	return nil
}

// Close stops the pacing ticker.
func (p *rateLimitedProvider) Close() {
	p.closeOnce.Do(func() {
		p.ticker.Stop()
	})
}
