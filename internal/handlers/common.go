package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/riftstats/predictor-api/internal/riot"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// upstreamError maps a Riot API failure onto our response: upstream 404
// passes through as 404, any other upstream status becomes 502 and
// everything else 500.
func (h *Handler) upstreamError(w http.ResponseWriter, err error, what string) {
	var se *riot.StatusError
	if errors.As(err, &se) {
		if se.Code == http.StatusNotFound {
			h.errorResponse(w, http.StatusNotFound, what+" not found")
			return
		}
		h.errorResponse(w, http.StatusBadGateway, "upstream request failed")
		return
	}
	h.errorResponse(w, http.StatusInternalServerError, "internal error")
}
