package collections

import (
	"context"
	"errors"
	"testing"

	"mobile-archive-service/internal/domain"
	domaincollections "mobile-archive-service/internal/domain/collections"
)

type stubProvider struct {
	records []domaincollections.Record
	err     error
	lastID  string
}

func (s *stubProvider) FetchCollections(_ context.Context, id string) ([]domaincollections.Record, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestListServesLiveData(t *testing.T) {
	provider := &stubProvider{records: []domaincollections.Record{{ProductID: "nokia-6110", Name: "Nokia 6110"}}}
	svc := NewService(provider, nil, nil, nil)

	records, source := svc.List(context.Background(), "")

	if source != domain.SourceLive {
		t.Fatalf("source = %q, want %q", source, domain.SourceLive)
	}
	if len(records) != 1 || records[0].Name != "Nokia 6110" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestListFallsBackToSampleDevices(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	svc := NewService(provider, nil, nil, nil)

	records, source := svc.List(context.Background(), "")

	if source != domain.SourceFallback {
		t.Fatalf("source = %q, want %q", source, domain.SourceFallback)
	}
	if len(records) == 0 {
		t.Fatal("expected sample devices, got none")
	}
}

func TestListServesCachedSnapshotAfterSuccess(t *testing.T) {
	provider := &stubProvider{records: []domaincollections.Record{{ProductID: "n-gage"}}}
	svc := NewService(provider, nil, nil, nil)
	svc.List(context.Background(), "")

	provider.err = errors.New("upstream down")
	records, source := svc.List(context.Background(), "")

	if source != domain.SourceCache {
		t.Fatalf("source = %q, want %q", source, domain.SourceCache)
	}
	if len(records) != 1 || records[0].ProductID != "n-gage" {
		t.Fatalf("unexpected cached records: %+v", records)
	}
}

func TestListSingleRecordFailureSkipsCache(t *testing.T) {
	provider := &stubProvider{records: []domaincollections.Record{{ProductID: "n-gage"}}}
	svc := NewService(provider, nil, nil, nil)
	svc.List(context.Background(), "")

	provider.err = errors.New("upstream down")
	_, source := svc.List(context.Background(), "n-gage")

	if source != domain.SourceFallback {
		t.Fatalf("source = %q, want %q", source, domain.SourceFallback)
	}
	if provider.lastID != "n-gage" {
		t.Errorf("provider saw id %q, want %q", provider.lastID, "n-gage")
	}
}

func TestStatusTracksFailures(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	svc := NewService(provider, nil, nil, nil)

	for i := 0; i < 3; i++ {
		svc.List(context.Background(), "")
	}

	if status := svc.Status(); status.Healthy() {
		t.Errorf("expected unhealthy status, got %+v", status)
	}
}
