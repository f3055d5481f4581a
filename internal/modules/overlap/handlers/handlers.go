// Package handlers provides HTTP handlers for overlap analysis.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const contentTypeMsgpack = "application/msgpack"

// AnalyzeRequest is the body of POST /api/analyze
type AnalyzeRequest struct {
	Tickers json.RawMessage `json:"tickers"`
	Market  string          `json:"market,omitempty"` // Accepted for client compatibility, unused
}

// Handler handles overlap HTTP requests
type Handler struct {
	service    *overlap.Service
	maxTickers int
	log        zerolog.Logger
}

// NewHandler creates a new overlap handler. maxTickers caps the request size;
// zero or less means no cap.
func NewHandler(service *overlap.Service, maxTickers int, log zerolog.Logger) *Handler {
	return &Handler{
		service:    service,
		maxTickers: maxTickers,
		log:        log.With().Str("handler", "overlap").Logger(),
	}
}

// HandleAnalyze handles POST /api/analyze
// Responds with {holdings, etf_info, overlap_matrix, tickers}. Per-fund
// provider failures never fail the request.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid tickers")
		return
	}

	tickers, ok := h.parseTickers(req.Tickers)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Invalid tickers")
		return
	}

	analysis := h.service.Analyze(r.Context(), tickers)

	if acceptsMsgpack(r) {
		h.writeMsgpack(w, http.StatusOK, analysis)
		return
	}
	h.writeJSON(w, http.StatusOK, analysis)
}

// parseTickers accepts a JSON array of 1..maxTickers non-blank strings.
// Duplicates are kept; order is preserved.
func (h *Handler) parseTickers(raw json.RawMessage) ([]string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}

	var tickers []string
	if err := json.Unmarshal(raw, &tickers); err != nil {
		return nil, false
	}
	if len(tickers) == 0 || (h.maxTickers > 0 && len(tickers) > h.maxTickers) {
		return nil, false
	}

	for i, t := range tickers {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, false
		}
		tickers[i] = t
	}

	return tickers, true
}

func acceptsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack)
}

func (h *Handler) writeMsgpack(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeMsgpack)
	w.WriteHeader(status)

	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode msgpack response")
	}
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
