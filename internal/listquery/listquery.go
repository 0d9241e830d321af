// Package listquery filters and paginates canonical record lists. All
// matching is case-insensitive; filters combine with AND across fields and
// OR within a multi-select field.
package listquery

import (
	"net/url"
	"strconv"
	"strings"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
)

// AllValues is the sentinel filter value meaning "no constraint".
const AllValues = "all"

const (
	// DefaultPageSize is the number of records per page when the request
	// does not ask for a size.
	DefaultPageSize = 12
	maxPageSize     = 100
)

// Params holds the parsed filter and pagination inputs for a list request.
type Params struct {
	Query        string
	Genres       []string
	Hardware     string
	Connectivity string
	Category     string
	YearMin      int
	YearMax      int
	Page         int
	PageSize     int
}

// ParseParams reads filter and pagination values from a request query
// string. Unset and unparsable values fall back to "no constraint" and the
// default page settings.
func ParseParams(values url.Values) Params {
	p := Params{
		Query:        strings.TrimSpace(values.Get("q")),
		Hardware:     normalizeFilter(values.Get("hardware")),
		Connectivity: normalizeFilter(values.Get("connectivity")),
		Category:     normalizeFilter(values.Get("category")),
		YearMin:      parseIntOrZero(values.Get("year_min")),
		YearMax:      parseIntOrZero(values.Get("year_max")),
		Page:         parseIntOrZero(values.Get("page")),
		PageSize:     parseIntOrZero(values.Get("page_size")),
	}

	for _, raw := range values["genre"] {
		if genre := normalizeFilter(raw); genre != "" {
			p.Genres = append(p.Genres, genre)
		}
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// FilterGames returns the records matching every active filter in p.
func FilterGames(records []games.Record, p Params) []games.Record {
	out := make([]games.Record, 0, len(records))
	for _, record := range records {
		if !matchesQuery(p.Query, record.Title, record.Developers, record.Description) {
			continue
		}
		if !matchesAny(p.Genres, record.Genre) {
			continue
		}
		if !matchesField(p.Hardware, record.Hardware) {
			continue
		}
		if !matchesField(p.Connectivity, record.Connectivity) {
			continue
		}
		if !matchesYearRange(record.Year, p.YearMin, p.YearMax) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// FilterCollections returns the collection records matching every active
// filter in p.
func FilterCollections(records []collections.Record, p Params) []collections.Record {
	out := make([]collections.Record, 0, len(records))
	for _, record := range records {
		if !matchesQuery(p.Query, record.Name, record.Maker, record.Description) {
			continue
		}
		if !matchesField(p.Category, record.Category) {
			continue
		}
		if !matchesYearRange(record.Year, p.YearMin, p.YearMax) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// PageInfo describes the page actually served after clamping.
type PageInfo struct {
	Number       int
	Size         int
	TotalPages   int
	TotalRecords int
}

// Paginate slices records into the requested page. A page past the end of
// the filtered set resets to page 1 rather than returning an empty page.
func Paginate[T any](records []T, page, size int) ([]T, PageInfo) {
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := (len(records) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		page = 1
	}

	info := PageInfo{
		Number:       page,
		Size:         size,
		TotalPages:   totalPages,
		TotalRecords: len(records),
	}

	start := (page - 1) * size
	if start >= len(records) {
		return []T{}, info
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], info
}

// normalizeFilter maps the "all" sentinel and blank input to no constraint.
func normalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, AllValues) {
		return ""
	}
	return value
}

func parseIntOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesField(filter, value string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func matchesAny(filters []string, value string) bool {
	if len(filters) == 0 {
		return true
	}
	lowered := strings.ToLower(value)
	for _, filter := range filters {
		if strings.Contains(lowered, strings.ToLower(filter)) {
			return true
		}
	}
	return false
}

// matchesYearRange passes records whose year parses and falls inside the
// inclusive range. Unparsable years are treated as unknown and never
// excluded. A zero bound means unbounded on that side.
func matchesYearRange(year string, min, max int) bool {
	if min == 0 && max == 0 {
		return true
	}
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return true
	}
	if min != 0 && n < min {
		return false
	}
	if max != 0 && n > max {
		return false
	}
	return true
}
