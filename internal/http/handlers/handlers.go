// Package handlers wires HTTP routes to the data services. Data endpoints
// always answer 200 with a JSON array: upstream failures surface only
// through the X-Fallback and X-Stale headers, never as an error body.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	appcollections "mobile-archive-service/internal/app/collections"
	appgames "mobile-archive-service/internal/app/games"
	"mobile-archive-service/internal/domain"
	"mobile-archive-service/internal/listquery"
	"mobile-archive-service/internal/logging"
)

// Cache-Control values keyed by where the data came from. Live responses are
// CDN-cacheable with stale-while-revalidate; degraded responses must not be
// cached or the degradation would outlive the outage.
const (
	cacheControlLive     = "public, s-maxage=3600, stale-while-revalidate=86400"
	cacheControlDegraded = "no-store"
)

// Handler serves the archive API routes.
type Handler struct {
	games       *appgames.Service
	collections *appcollections.Service
	logger      *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(games *appgames.Service, collections *appcollections.Service, logger *slog.Logger) *Handler {
	return &Handler{
		games:       games,
		collections: collections,
		logger:      logger,
	}
}

// Games serves GET /api/games: the full game list, or a single record via
// ?id=, filtered and paginated by the remaining query parameters.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := r.URL.Query().Get("id")
	records, source := h.games.List(r.Context(), id)

	params := listquery.ParseParams(r.URL.Query())
	filtered := listquery.FilterGames(records, params)
	page, info := listquery.Paginate(filtered, params.Page, params.PageSize)

	logger := loggerFromRequest(r, h.logger)
	logging.Info(logger, "served games",
		logging.FieldSource, string(source),
		logging.FieldCount, len(page),
		logging.FieldRecordID, id)

	setSourceHeaders(w, source)
	setPageHeaders(w, info)
	writeJSON(w, http.StatusOK, page, h.logger)
}

// Collections serves GET /api and GET /api/collections: the device
// collection list with the same conventions as the games route.
func (h *Handler) Collections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := r.URL.Query().Get("id")
	records, source := h.collections.List(r.Context(), id)

	params := listquery.ParseParams(r.URL.Query())
	filtered := listquery.FilterCollections(records, params)
	page, info := listquery.Paginate(filtered, params.Page, params.PageSize)

	logger := loggerFromRequest(r, h.logger)
	logging.Info(logger, "served collections",
		logging.FieldSource, string(source),
		logging.FieldCount, len(page),
		logging.FieldRecordID, id)

	setSourceHeaders(w, source)
	setPageHeaders(w, info)
	writeJSON(w, http.StatusOK, page, h.logger)
}

// Health reports process health and recent upstream status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}

	resp := map[string]any{"status": "ok"}
	if h.games != nil {
		resp["games_upstream"] = upstreamStatus(h.games.Status())
	}
	if h.collections != nil {
		resp["collections_upstream"] = upstreamStatus(h.collections.Status())
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic. The service degrades to cached and
// sample data instead of failing, so readiness does not depend on the
// upstream being reachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

func setSourceHeaders(w http.ResponseWriter, source domain.Source) {
	switch {
	case source.IsFallback():
		w.Header().Set("X-Fallback", "true")
		w.Header().Set("Cache-Control", cacheControlDegraded)
	case source.IsStale():
		w.Header().Set("X-Stale", "true")
		w.Header().Set("Cache-Control", cacheControlDegraded)
	default:
		w.Header().Set("Cache-Control", cacheControlLive)
	}
}

func setPageHeaders(w http.ResponseWriter, info listquery.PageInfo) {
	w.Header().Set("X-Total-Count", strconv.Itoa(info.TotalRecords))
	w.Header().Set("X-Total-Pages", strconv.Itoa(info.TotalPages))
	w.Header().Set("X-Page", strconv.Itoa(info.Number))
}

func upstreamStatus(status domain.UpstreamStatus) map[string]any {
	out := map[string]any{
		"healthy":              status.Healthy(),
		"consecutive_failures": status.ConsecutiveFailures,
	}
	if status.LastError != "" {
		out["last_error"] = status.LastError
	}
	if !status.LastSuccess.IsZero() {
		out["last_success"] = status.LastSuccess
	}
	return out
}
