package providers

import (
	"context"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// GameProvider defines how upstream game data is fetched and normalized.
// An empty id means the full list; a non-empty id scopes the fetch to a
// single record.
type GameProvider interface {
	FetchGames(ctx context.Context, id string) ([]games.Record, error)
}

// CollectionProvider fetches normalized device collection items.
type CollectionProvider interface {
	FetchCollections(ctx context.Context, id string) ([]collections.Record, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	CollectionProvider
}
