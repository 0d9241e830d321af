package testutil

import (
	"context"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// StubProvider serves fixed record lists, or a fixed error when Err is set.
// It satisfies providers.DataProvider.
type StubProvider struct {
	Games       []games.Record
	Collections []collections.Record
	Err         error

	GameCalls       int
	CollectionCalls int
	LastID          string
}

func (s *StubProvider) FetchGames(_ context.Context, id string) ([]games.Record, error) {
	s.GameCalls++
	s.LastID = id
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

func (s *StubProvider) FetchCollections(_ context.Context, id string) ([]collections.Record, error) {
	s.CollectionCalls++
	s.LastID = id
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Collections, nil
}
