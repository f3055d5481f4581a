package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers overlap analysis routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze", h.HandleAnalyze)
}
