package domain

// Source identifies where a served record set came from.
type Source string

const (
	// SourceLive means the records were fetched from the upstream archive on this request.
	SourceLive Source = "live"
	// SourceCache means the upstream fetch failed and the last successful fetch was served.
	SourceCache Source = "cache"
	// SourceFallback means the fixed sample data was served.
	SourceFallback Source = "fallback"
)

// IsFallback reports whether the served data is the static sample set.
func (s Source) IsFallback() bool {
	return s == SourceFallback
}

// IsStale reports whether the served data predates this request.
func (s Source) IsStale() bool {
	return s == SourceCache
}
