package providers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
	"mobile-archive-service/internal/dynamo"
)

// Identifying fields let the envelope detector recognize a bare object as a
// single record of each resource.
var (
	GameIdentifyingFields       = []string{"Title", "GameTitle"}
	CollectionIdentifyingFields = []string{"ProductID", "id"}
)

// MapGame normalizes one raw upstream record into the canonical game shape.
// Each field tries the current upstream name, then the legacy name used by an
// earlier table schema. Presence decides the fallback: a key that exists wins
// even when its value is empty.
func MapGame(raw map[string]any) games.Record {
	plain := dynamo.UnwrapRecord(raw)
	return games.Record{
		Title:         pick(plain, "Title", "GameTitle", ""),
		Year:          pick(plain, "Year", "ReleaseYear", ""),
		Developers:    pick(plain, "Developers", "Developer", ""),
		City:          pick(plain, "City", "DeveloperCity", ""),
		Country:       pick(plain, "Country", "DeveloperCountry", ""),
		URL:           pick(plain, "URL", "Link", ""),
		Description:   pick(plain, "Description", "Summary", ""),
		Pictures:      pick(plain, "Pictures", "Images", ""),
		Documentation: pick(plain, "Documentation", "Docs", ""),
		Articles:      pick(plain, "Articles", "Press", ""),
		Purpose:       pick(plain, "Purpose", "Intent", ""),
		OpenSource:    pick(plain, "Open Source", "OpenSource", ""),
		NumPlayers:    pick(plain, "# Players", "Players", ""),
		Location:      pick(plain, "Location", "Region", ""),
		Genre:         pick(plain, "Genre", "Genres", ""),
		Hardware:      pick(plain, "Hardware", "Platform", ""),
		Connectivity:  pick(plain, "Connectivity", "Connection", ""),
		Contact:       pick(plain, "Contact", "ContactEmail", "N/A"),
	}
}

// MapCollection normalizes one raw upstream record into the canonical device
// collection shape. ProductID and id are mutual fallbacks of each other.
func MapCollection(raw map[string]any) collections.Record {
	plain := dynamo.UnwrapRecord(raw)
	return collections.Record{
		ProductID:   pick(plain, "ProductID", "id", ""),
		ID:          pick(plain, "id", "ProductID", ""),
		Name:        pick(plain, "name", "Name", ""),
		Maker:       pick(plain, "maker", "Maker", ""),
		Year:        pick(plain, "year", "Year", ""),
		Description: pick(plain, "description", "Description", ""),
		Image:       pick(plain, "image", "Image", ""),
		Category:    pick(plain, "category", "Category", ""),
	}
}

func pick(plain map[string]any, primary, legacy, defaultValue string) string {
	if v, ok := plain[primary]; ok {
		return stringify(v)
	}
	if v, ok := plain[legacy]; ok {
		return stringify(v)
	}
	return defaultValue
}

// stringify renders an unwrapped value as the free-text form the canonical
// records carry. Lists join with ", " (first picture entry stays first).
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	default:
		if data, err := json.Marshal(val); err == nil {
			return string(data)
		}
		return fmt.Sprint(val)
	}
}
