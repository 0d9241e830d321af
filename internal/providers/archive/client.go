// Package archive fetches records from the research project's data gateway
// and normalizes them into canonical records.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
	"mobile-archive-service/internal/dynamo"
	"mobile-archive-service/internal/providers"
)

// Config controls how the client reaches the archive gateway.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches games and device collection items from the gateway and maps
// them to canonical records. It tolerates every envelope the gateway has been
// observed to answer with; see dynamo.ExtractRecords.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an archive gateway client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchGames retrieves games from the gateway, scoped to one record when id is set.
func (c *Client) FetchGames(ctx context.Context, id string) ([]games.Record, error) {
	body, err := c.get(ctx, gamesPath, id)
	if err != nil {
		return nil, fmt.Errorf("archive: fetch games: %w", err)
	}

	raw := dynamo.ExtractRecords(body, providers.GameIdentifyingFields...)
	out := make([]games.Record, 0, len(raw))
	for _, rec := range raw {
		out = append(out, providers.MapGame(rec))
	}
	return out, nil
}

// FetchCollections retrieves device collection items from the gateway.
func (c *Client) FetchCollections(ctx context.Context, id string) ([]collections.Record, error) {
	body, err := c.get(ctx, collectionsPath, id)
	if err != nil {
		return nil, fmt.Errorf("archive: fetch collections: %w", err)
	}

	raw := dynamo.ExtractRecords(body, providers.CollectionIdentifyingFields...)
	out := make([]collections.Record, 0, len(raw))
	for _, rec := range raw {
		out = append(out, providers.MapCollection(rec))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, id string) (any, error) {
	target := c.baseURL + path
	if id != "" {
		target += "/" + url.PathEscape(id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// Always hit the origin; shared caching happens on our own responses.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamStatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(detail)),
		}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
