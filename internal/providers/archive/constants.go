package archive

import "time"

const (
	providerName    = "archive"
	gamesPath       = "/games"
	collectionsPath = "/collections"

	defaultHTTPTimeout = 10 * time.Second
)
