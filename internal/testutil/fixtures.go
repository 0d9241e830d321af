package testutil

import (
	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided title.
func SampleGame(title string) games.Record {
	return games.Record{
		Title:      title,
		Year:       "1999",
		Developers: "Test Studio",
		Genre:      "Puzzle",
		Hardware:   "Test Phone",
		Contact:    "N/A",
	}
}

// SampleCollection returns a minimal collection fixture with the provided id.
func SampleCollection(id string) collections.Record {
	return collections.Record{
		ProductID: id,
		ID:        id,
		Name:      "Test Device",
		Maker:     "Test Maker",
		Year:      "1999",
		Category:  "Phone",
	}
}
