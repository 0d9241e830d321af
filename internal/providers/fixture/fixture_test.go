package fixture

import (
	"context"
	"reflect"
	"testing"
)

func TestFixtureSetSizes(t *testing.T) {
	if got := len(Games()); got != 2 {
		t.Fatalf("expected 2 sample games, got %d", got)
	}
	if got := len(Collections()); got != 5 {
		t.Fatalf("expected 5 sample devices, got %d", got)
	}
}

func TestFetchGamesDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchGames(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := p.FetchGames(context.Background(), "")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("fixture games should be deterministic")
	}
}

func TestFetchGamesByTitle(t *testing.T) {
	p := New()

	records, err := p.FetchGames(context.Background(), "snake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Snake" {
		t.Fatalf("unexpected records %+v", records)
	}

	records, _ = p.FetchGames(context.Background(), "does-not-exist")
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestFetchCollectionsByID(t *testing.T) {
	p := New()

	records, err := p.FetchCollections(context.Background(), "dev-003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Name != "N-Gage" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestEveryCanonicalFieldPopulatedOrDefaulted(t *testing.T) {
	for _, g := range Games() {
		if g.Title == "" || g.Year == "" || g.Contact == "" {
			t.Fatalf("sample game missing required defaults: %+v", g)
		}
	}
	for _, c := range Collections() {
		if c.ProductID == "" || c.ProductID != c.ID {
			t.Fatalf("sample device ids must match dual-key scheme: %+v", c)
		}
	}
}
