// Package handlers provides HTTP handlers for ETF search.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/etfoverlap/internal/modules/search"
	"github.com/rs/zerolog"
)

// Handler handles search HTTP requests
type Handler struct {
	service *search.Service
	log     zerolog.Logger
}

// NewHandler creates a new search handler
func NewHandler(service *search.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "search").Logger(),
	}
}

// HandleSearch handles GET /api/search?q=
// Returns ETF matches only; an empty query returns []
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	matches, err := h.service.SearchETFs(r.Context(), query)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Msg("Search failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
