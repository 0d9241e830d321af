package providers

import "testing"

func TestMapGameEmptyRecordFillsDefaults(t *testing.T) {
	rec := MapGame(map[string]any{})

	if rec.Contact != "N/A" {
		t.Fatalf("expected Contact default N/A, got %q", rec.Contact)
	}
	for name, got := range map[string]string{
		"Title":         rec.Title,
		"Year":          rec.Year,
		"Developers":    rec.Developers,
		"City":          rec.City,
		"Country":       rec.Country,
		"URL":           rec.URL,
		"Description":   rec.Description,
		"Pictures":      rec.Pictures,
		"Documentation": rec.Documentation,
		"Articles":      rec.Articles,
		"Purpose":       rec.Purpose,
		"Open Source":   rec.OpenSource,
		"# Players":     rec.NumPlayers,
		"Location":      rec.Location,
		"Genre":         rec.Genre,
		"Hardware":      rec.Hardware,
		"Connectivity":  rec.Connectivity,
	} {
		if got != "" {
			t.Fatalf("expected %s to default to empty string, got %q", name, got)
		}
	}
}

func TestMapGamePrimaryKeyOutranksLegacy(t *testing.T) {
	rec := MapGame(map[string]any{
		"Title":     map[string]any{"S": "Snake"},
		"GameTitle": map[string]any{"S": "Old Snake"},
	})

	if rec.Title != "Snake" {
		t.Fatalf("expected primary key to win, got %q", rec.Title)
	}
}

func TestMapGameLegacyAliasUsedWhenPrimaryAbsent(t *testing.T) {
	rec := MapGame(map[string]any{
		"GameTitle": map[string]any{"S": "Snake"},
		"Developer": map[string]any{"S": "Taneli Armanto"},
		"Platform":  map[string]any{"S": "Nokia 6110"},
	})

	if rec.Title != "Snake" || rec.Developers != "Taneli Armanto" || rec.Hardware != "Nokia 6110" {
		t.Fatalf("legacy aliases not applied: %+v", rec)
	}
}

func TestMapGamePresentEmptyStringWins(t *testing.T) {
	// Presence-based fallback: an existing key with an empty value must not
	// fall through to the legacy alias.
	rec := MapGame(map[string]any{
		"Title":     map[string]any{"S": ""},
		"GameTitle": map[string]any{"S": "Legacy"},
	})

	if rec.Title != "" {
		t.Fatalf("expected empty primary value kept, got %q", rec.Title)
	}
}

func TestMapGameZeroStringNotTreatedAsMissing(t *testing.T) {
	rec := MapGame(map[string]any{
		"# Players": map[string]any{"N": "0"},
	})

	if rec.NumPlayers != "0" {
		t.Fatalf("expected \"0\" kept, got %q", rec.NumPlayers)
	}
}

func TestMapGameJoinsSetsAndLists(t *testing.T) {
	rec := MapGame(map[string]any{
		"Genre": map[string]any{"SS": []any{"Puzzle", "Arcade"}},
		"Pictures": map[string]any{"L": []any{
			map[string]any{"S": "https://img/1.png"},
			map[string]any{"S": "https://img/2.png"},
		}},
	})

	if rec.Genre != "Puzzle, Arcade" {
		t.Fatalf("expected joined genres, got %q", rec.Genre)
	}
	if rec.Pictures != "https://img/1.png, https://img/2.png" {
		t.Fatalf("expected joined pictures, got %q", rec.Pictures)
	}
}

func TestMapGameAcceptsAlreadyPlainRecord(t *testing.T) {
	rec := MapGame(map[string]any{
		"Title": "Snake",
		"Year":  "1997",
	})

	if rec.Title != "Snake" || rec.Year != "1997" {
		t.Fatalf("plain record mishandled: %+v", rec)
	}
}

func TestMapCollectionDualKeyFallbacks(t *testing.T) {
	rec := MapCollection(map[string]any{
		"ProductID": map[string]any{"S": "p-100"},
	})
	if rec.ProductID != "p-100" || rec.ID != "p-100" {
		t.Fatalf("expected ProductID mirrored into id, got %+v", rec)
	}

	rec = MapCollection(map[string]any{
		"id": map[string]any{"S": "legacy-7"},
	})
	if rec.ProductID != "legacy-7" || rec.ID != "legacy-7" {
		t.Fatalf("expected legacy id mirrored into ProductID, got %+v", rec)
	}
}

func TestMapCollectionLegacyCapitalizedAliases(t *testing.T) {
	rec := MapCollection(map[string]any{
		"Name":  map[string]any{"S": "Nokia 6110"},
		"Maker": map[string]any{"S": "Nokia"},
		"Year":  map[string]any{"N": "1997"},
	})

	if rec.Name != "Nokia 6110" || rec.Maker != "Nokia" || rec.Year != "1997" {
		t.Fatalf("capitalized aliases not applied: %+v", rec)
	}
}

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "true"},
		{float64(2003), "2003"},
		{[]any{"a", "b"}, "a, b"},
	}

	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Fatalf("stringify(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
