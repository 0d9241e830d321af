// Package games orchestrates fetching game records: live data first, then the
// last good snapshot, then the built-in sample set. Callers always receive a
// usable list.
package games

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mobile-archive-service/internal/domain"
	domaingames "mobile-archive-service/internal/domain/games"
	"mobile-archive-service/internal/logging"
	"mobile-archive-service/internal/metrics"
	"mobile-archive-service/internal/providers"
	"mobile-archive-service/internal/providers/fixture"
	"mobile-archive-service/internal/store"
)

const resourceName = "games"

// Service fetches game records from the configured provider and absorbs
// every upstream failure by degrading through cache and sample data.
type Service struct {
	provider providers.GameProvider
	fallback func() []domaingames.Record
	cache    *store.Cache[domaingames.Record]
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu     sync.RWMutex
	status domain.UpstreamStatus
}

// NewService builds a Service around provider. A nil fallback uses the
// built-in sample games.
func NewService(provider providers.GameProvider, fallback func() []domaingames.Record, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if fallback == nil {
		fallback = fixture.Games
	}
	return &Service{
		provider: provider,
		fallback: fallback,
		cache:    store.NewCache[domaingames.Record](),
		logger:   logger,
		metrics:  recorder,
	}
}

// List returns game records for the optional id, along with where the data
// came from. It never returns an error: upstream failures degrade to the
// last good snapshot (full-list requests only) and then to sample data.
func (s *Service) List(ctx context.Context, id string) ([]domaingames.Record, domain.Source) {
	records, err := s.fetch(ctx, id)
	if err == nil {
		if id == "" {
			s.cache.Set(records)
		}
		s.recordSuccess()
		return records, domain.SourceLive
	}

	logger := logging.FromContext(ctx, s.logger)
	logging.Error(logger, "upstream fetch failed", err, logging.FieldResource, resourceName, logging.FieldRecordID, id)
	s.recordFailure(err)

	if id == "" {
		if cached, setAt, ok := s.cache.Get(); ok {
			s.metrics.RecordFallback(resourceName, string(domain.SourceCache))
			logging.Warn(logger, "serving last good snapshot",
				logging.FieldResource, resourceName,
				logging.FieldSource, string(domain.SourceCache),
				"snapshot_age_ms", time.Since(setAt).Milliseconds())
			return cached, domain.SourceCache
		}
	}

	s.metrics.RecordFallback(resourceName, string(domain.SourceFallback))
	logging.Warn(logger, "serving sample data",
		logging.FieldResource, resourceName,
		logging.FieldSource, string(domain.SourceFallback))
	return s.fallback(), domain.SourceFallback
}

// Status reports the recent health of the upstream provider.
func (s *Service) Status() domain.UpstreamStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Service) fetch(ctx context.Context, id string) ([]domaingames.Record, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.provider.FetchGames(ctx, id)
}

func (s *Service) recordSuccess() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastAttempt = now
	s.status.LastSuccess = now
}

func (s *Service) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.ConsecutiveFailures++
	s.status.LastError = err.Error()
	s.status.LastAttempt = time.Now()
}
