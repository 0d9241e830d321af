package collections

// Record is the canonical device-collection item exposed by the service.
// ProductID and id carry the same value under the legacy dual-key scheme:
// older site pages read id, newer ones read ProductID.
type Record struct {
	ProductID   string `json:"ProductID"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Maker       string `json:"maker"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Key returns the identifier for the record, preferring ProductID.
func (r Record) Key() string {
	if r.ProductID != "" {
		return r.ProductID
	}
	return r.ID
}
