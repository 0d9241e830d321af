package server

import (
	"context"
	"log/slog"
	"strings"

	"mobile-archive-service/internal/config"
	"mobile-archive-service/internal/logging"
	"mobile-archive-service/internal/metrics"
	"mobile-archive-service/internal/providers"
	"mobile-archive-service/internal/providers/archive"
	"mobile-archive-service/internal/providers/dynamotable"
	"mobile-archive-service/internal/providers/fixture"
)

const (
	providerArchive = "archive"
	providerDynamo  = "dynamodb"
	providerFixture = "fixture"
)

// providerFactory assembles the configured provider with the shared
// decorators (optional rate limit, then retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(ctx context.Context, cfg config.Config) providers.DataProvider {
	base, name := f.selectProvider(ctx, cfg)

	provider := base
	if cfg.Archive.MinInterval > 0 {
		provider = providers.NewRateLimitedProvider(provider, cfg.Archive.MinInterval, f.logger)
	}
	return providers.NewRetryingProvider(provider, f.logger, f.metrics, name, cfg.Archive.RetryAttempts, cfg.Archive.RetryBackoff)
}

func (f providerFactory) selectProvider(ctx context.Context, cfg config.Config) (providers.DataProvider, string) {
	switch strings.ToLower(cfg.Provider) {
	case providerFixture:
		return fixture.New(), providerFixture
	case providerDynamo:
		client, err := dynamotable.NewClient(ctx, dynamotable.Config{
			GamesTable:       cfg.Dynamo.GamesTable,
			CollectionsTable: cfg.Dynamo.CollectionsTable,
			Region:           cfg.Dynamo.Region,
		})
		if err == nil {
			return client, providerDynamo
		}
		logging.Error(f.logger, "dynamodb provider unavailable, using archive gateway", err)
	}

	return archive.NewClient(archive.Config{
		BaseURL: cfg.Archive.BaseURL,
		Timeout: cfg.Archive.Timeout,
	}), providerArchive
}
