// Package fixture supplies the fixed sample records served when the upstream
// pipeline fails, so the site never renders empty. It also doubles as the
// PROVIDER=fixture development provider.
package fixture

import (
	"context"
	"strings"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// Provider returns a static set of records useful when the gateway is down
// and for local testing.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns the deterministic sample games, optionally scoped to one title.
func (p *Provider) FetchGames(ctx context.Context, id string) ([]games.Record, error) {
	_ = ctx
	all := Games()
	if id == "" {
		return all, nil
	}
	out := make([]games.Record, 0, 1)
	for _, g := range all {
		if strings.EqualFold(g.Title, id) {
			out = append(out, g)
		}
	}
	return out, nil
}

// FetchCollections returns the deterministic sample devices, optionally scoped to one id.
func (p *Provider) FetchCollections(ctx context.Context, id string) ([]collections.Record, error) {
	_ = ctx
	all := Collections()
	if id == "" {
		return all, nil
	}
	out := make([]collections.Record, 0, 1)
	for _, c := range all {
		if c.ProductID == id || c.ID == id {
			out = append(out, c)
		}
	}
	return out, nil
}

// Games returns the sample game set. Callers receive a fresh slice.
func Games() []games.Record {
	return []games.Record{
		{
			Title:         "Snake",
			Year:          "1997",
			Developers:    "Taneli Armanto",
			City:          "Espoo",
			Country:       "Finland",
			URL:           "https://en.wikipedia.org/wiki/Snake_(video_game_genre)",
			Description:   "Monochrome arcade classic bundled with the Nokia 6110; steering a growing snake around the screen made it the first mobile game most people ever played.",
			Pictures:      "https://archive.example/images/snake-6110.png",
			Documentation: "",
			Articles:      "",
			Purpose:       "Entertainment",
			OpenSource:    "No",
			NumPlayers:    "2",
			Location:      "Europe",
			Genre:         "Arcade, Puzzle",
			Hardware:      "Nokia 6110",
			Connectivity:  "Infrared",
			Contact:       "N/A",
		},
		{
			Title:         "Space Impact",
			Year:          "2000",
			Developers:    "Nokia",
			City:          "Espoo",
			Country:       "Finland",
			URL:           "https://en.wikipedia.org/wiki/Space_Impact",
			Description:   "Side-scrolling shooter shipped with the Nokia 3310; two players could battle head to head over an infrared link.",
			Pictures:      "https://archive.example/images/space-impact-3310.png",
			Documentation: "",
			Articles:      "",
			Purpose:       "Entertainment",
			OpenSource:    "No",
			NumPlayers:    "2",
			Location:      "Europe",
			Genre:         "Shooter",
			Hardware:      "Nokia 3310",
			Connectivity:  "Infrared",
			Contact:       "N/A",
		},
	}
}

// Collections returns the sample device set. Callers receive a fresh slice.
func Collections() []collections.Record {
	return []collections.Record{
		{
			ProductID:   "dev-001",
			ID:          "dev-001",
			Name:        "Nokia 6110",
			Maker:       "Nokia",
			Year:        "1997",
			Description: "The handset that shipped Snake and started mobile gaming for a mass audience.",
			Image:       "https://archive.example/images/nokia-6110.png",
			Category:    "Phone",
		},
		{
			ProductID:   "dev-002",
			ID:          "dev-002",
			Name:        "Nokia 3310",
			Maker:       "Nokia",
			Year:        "2000",
			Description: "Carried Space Impact and Snake II; famously durable.",
			Image:       "https://archive.example/images/nokia-3310.png",
			Category:    "Phone",
		},
		{
			ProductID:   "dev-003",
			ID:          "dev-003",
			Name:        "N-Gage",
			Maker:       "Nokia",
			Year:        "2003",
			Description: "Nokia's taco-shaped attempt to merge a phone and a handheld console.",
			Image:       "https://archive.example/images/n-gage.png",
			Category:    "Handheld",
		},
		{
			ProductID:   "dev-004",
			ID:          "dev-004",
			Name:        "Siemens SL45",
			Maker:       "Siemens",
			Year:        "2001",
			Description: "First phone with an MP3 player and expandable memory; a popular Java gaming target.",
			Image:       "https://archive.example/images/siemens-sl45.png",
			Category:    "Phone",
		},
		{
			ProductID:   "dev-005",
			ID:          "dev-005",
			Name:        "Motorola RAZR V3",
			Maker:       "Motorola",
			Year:        "2004",
			Description: "Ultra-thin flip phone whose J2ME titles reached an enormous install base.",
			Image:       "https://archive.example/images/razr-v3.png",
			Category:    "Phone",
		},
	}
}
