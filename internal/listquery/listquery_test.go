package listquery

import (
	"net/url"
	"testing"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

func TestParseParamsDefaults(t *testing.T) {
	p := ParseParams(url.Values{})

	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", p.PageSize, DefaultPageSize)
	}
	if p.Query != "" || p.Hardware != "" || len(p.Genres) != 0 {
		t.Errorf("expected empty filters, got %+v", p)
	}
}

func TestParseParamsReadsFilters(t *testing.T) {
	values := url.Values{
		"q":        {" snake "},
		"genre":    {"Puzzle", "Action", "all"},
		"hardware": {"Nokia"},
		"category": {"All"},
		"year_min": {"1995"},
		"year_max": {"2001"},
		"page":     {"2"},
	}

	p := ParseParams(values)

	if p.Query != "snake" {
		t.Errorf("Query = %q, want %q", p.Query, "snake")
	}
	if len(p.Genres) != 2 || p.Genres[0] != "Puzzle" || p.Genres[1] != "Action" {
		t.Errorf("Genres = %v, want [Puzzle Action]", p.Genres)
	}
	if p.Category != "" {
		t.Errorf("Category = %q, want the all sentinel to clear it", p.Category)
	}
	if p.YearMin != 1995 || p.YearMax != 2001 {
		t.Errorf("year range = [%d,%d], want [1995,2001]", p.YearMin, p.YearMax)
	}
	if p.Page != 2 {
		t.Errorf("Page = %d, want 2", p.Page)
	}
}

func TestParseParamsClampsPageSize(t *testing.T) {
	p := ParseParams(url.Values{"page_size": {"5000"}})
	if p.PageSize != maxPageSize {
		t.Errorf("PageSize = %d, want %d", p.PageSize, maxPageSize)
	}

	p = ParseParams(url.Values{"page_size": {"-3"}, "page": {"junk"}})
	if p.PageSize != DefaultPageSize || p.Page != 1 {
		t.Errorf("got PageSize=%d Page=%d, want defaults", p.PageSize, p.Page)
	}
}

func sampleGames() []games.Record {
	return []games.Record{
		{Title: "Snake", Developers: "Taneli Armanto", Year: "1997", Genre: "Puzzle", Hardware: "Nokia 6110", Connectivity: "Infrared"},
		{Title: "Space Impact", Developers: "Nokia", Year: "2000", Genre: "Action", Hardware: "Nokia 3310", Connectivity: "None"},
		{Title: "Mystery Game", Developers: "Unknown Studio", Year: "unknown", Genre: "Puzzle", Hardware: "Siemens SL45", Connectivity: "None"},
	}
}

func TestFilterGamesTextSearch(t *testing.T) {
	got := FilterGames(sampleGames(), Params{Query: "ARMANTO"})
	if len(got) != 1 || got[0].Title != "Snake" {
		t.Fatalf("got %+v, want just Snake", got)
	}

	if got := FilterGames(sampleGames(), Params{Query: "zzz"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestFilterGamesCombinesWithAnd(t *testing.T) {
	p := Params{Genres: []string{"Puzzle"}, YearMin: 1989, YearMax: 1999}
	got := FilterGames(sampleGames(), p)

	// Mystery Game's unparsable year passes the range filter, so both
	// puzzle games survive; the action game from 2000 does not.
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(got), got)
	}
	for _, record := range got {
		if record.Genre != "Puzzle" {
			t.Errorf("record %q has genre %q, want Puzzle", record.Title, record.Genre)
		}
	}
}

func TestFilterGamesYearRangeExcludes(t *testing.T) {
	p := Params{YearMin: 1998, YearMax: 2005}
	got := FilterGames(sampleGames(), p)

	titles := map[string]bool{}
	for _, record := range got {
		titles[record.Title] = true
	}
	if titles["Snake"] {
		t.Error("Snake (1997) should be excluded by [1998,2005]")
	}
	if !titles["Space Impact"] {
		t.Error("Space Impact (2000) should pass [1998,2005]")
	}
	if !titles["Mystery Game"] {
		t.Error("unparsable year should pass through the range filter")
	}
}

func TestFilterGamesMultiSelectGenreIsOr(t *testing.T) {
	p := Params{Genres: []string{"Action", "Puzzle"}}
	if got := FilterGames(sampleGames(), p); len(got) != 3 {
		t.Fatalf("got %d records, want all 3", len(got))
	}
}

func TestFilterGamesHardwareAndConnectivity(t *testing.T) {
	p := Params{Hardware: "nokia", Connectivity: "infrared"}
	got := FilterGames(sampleGames(), p)
	if len(got) != 1 || got[0].Title != "Snake" {
		t.Fatalf("got %+v, want just Snake", got)
	}
}

func TestFilterCollections(t *testing.T) {
	records := []collections.Record{
		{Name: "Nokia 6110", Maker: "Nokia", Year: "1997", Category: "Phone"},
		{Name: "N-Gage", Maker: "Nokia", Year: "2003", Category: "Handheld"},
		{Name: "RAZR V3", Maker: "Motorola", Year: "2004", Category: "Phone"},
	}

	got := FilterCollections(records, Params{Query: "nokia", Category: "phone"})
	if len(got) != 1 || got[0].Name != "Nokia 6110" {
		t.Fatalf("got %+v, want just Nokia 6110", got)
	}

	got = FilterCollections(records, Params{YearMin: 2003})
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestPaginateSlices(t *testing.T) {
	records := make([]int, 25)
	for i := range records {
		records[i] = i
	}

	page, info := Paginate(records, 2, 12)
	if len(page) != 12 || page[0] != 12 {
		t.Fatalf("page 2 = %v", page)
	}
	if info.TotalPages != 3 || info.TotalRecords != 25 || info.Number != 2 {
		t.Errorf("info = %+v", info)
	}

	page, info = Paginate(records, 3, 12)
	if len(page) != 1 || page[0] != 24 {
		t.Fatalf("last page = %v", page)
	}
	if info.Number != 3 {
		t.Errorf("info.Number = %d, want 3", info.Number)
	}
}

func TestPaginateOutOfRangeResetsToFirstPage(t *testing.T) {
	records := make([]int, 25)
	for i := range records {
		records[i] = i
	}

	page, info := Paginate(records, 5, 12)
	if info.Number != 1 {
		t.Fatalf("info.Number = %d, want reset to 1", info.Number)
	}
	if len(page) != 12 || page[0] != 0 {
		t.Fatalf("page = %v, want first 12 records", page)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	page, info := Paginate([]int{}, 3, 12)
	if len(page) != 0 {
		t.Fatalf("page = %v, want empty", page)
	}
	if info.TotalPages != 1 || info.Number != 1 || info.TotalRecords != 0 {
		t.Errorf("info = %+v", info)
	}
}
