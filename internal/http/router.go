// Package http assembles the service's routes.
package http

import (
	nethttp "net/http"

	"mobile-archive-service/internal/http/handlers"
)

// NewRouter registers routes on a ServeMux. The bare /api path is the
// legacy collections endpoint kept for older site builds.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/games", handler.Games)
	mux.HandleFunc("/api/collections", handler.Collections)
	mux.HandleFunc("/api", handler.Collections)
	return mux
}
