package games

import "strings"

// Record is the canonical game shape exposed by the service. Every field is
// plain text and always present; multi-value upstream fields arrive joined
// with ", ". The JSON keys (including "Open Source" and "# Players") are the
// external contract consumed by the archive site and must not change.
type Record struct {
	Title         string `json:"Title"`
	Year          string `json:"Year"`
	Developers    string `json:"Developers"`
	City          string `json:"City"`
	Country       string `json:"Country"`
	URL           string `json:"URL"`
	Description   string `json:"Description"`
	Pictures      string `json:"Pictures"`
	Documentation string `json:"Documentation"`
	Articles      string `json:"Articles"`
	Purpose       string `json:"Purpose"`
	OpenSource    string `json:"Open Source"`
	NumPlayers    string `json:"# Players"`
	Location      string `json:"Location"`
	Genre         string `json:"Genre"`
	Hardware      string `json:"Hardware"`
	Connectivity  string `json:"Connectivity"`
	Contact       string `json:"Contact"`
}

// PrimaryPicture returns the first entry of the comma-joined Pictures field.
func (r Record) PrimaryPicture() string {
	first, _, _ := strings.Cut(r.Pictures, ",")
	return strings.TrimSpace(first)
}
