// Package collections orchestrates fetching device collection records with
// the same degrade-to-cache, degrade-to-sample behavior as the games service.
package collections

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mobile-archive-service/internal/domain"
	domaincollections "mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/logging"
	"mobile-archive-service/internal/metrics"
	"mobile-archive-service/internal/providers"
	"mobile-archive-service/internal/providers/fixture"
	"mobile-archive-service/internal/store"
)

const resourceName = "collections"

// Service fetches collection records and absorbs every upstream failure.
type Service struct {
	provider providers.CollectionProvider
	fallback func() []domaincollections.Record
	cache    *store.Cache[domaincollections.Record]
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu     sync.RWMutex
	status domain.UpstreamStatus
}

// NewService builds a Service around provider. A nil fallback uses the
// built-in sample devices.
func NewService(provider providers.CollectionProvider, fallback func() []domaincollections.Record, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if fallback == nil {
		fallback = fixture.Collections
	}
	return &Service{
		provider: provider,
		fallback: fallback,
		cache:    store.NewCache[domaincollections.Record](),
		logger:   logger,
		metrics:  recorder,
	}
}

// List returns collection records for the optional id and their source.
// It never returns an error.
func (s *Service) List(ctx context.Context, id string) ([]domaincollections.Record, domain.Source) {
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

func (s *Service) fetch(ctx context.Context, id string) ([]domaincollections.Record, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.provider.FetchCollections(ctx, id)
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
