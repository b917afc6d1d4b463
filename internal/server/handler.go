package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"palette-api/internal/themes"
	"palette-api/internal/ui"
)

const maxBodyBytes = 16 << 10

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type themeRequest struct {
	Theme *string `json:"theme"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleThemePalette(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil || req.Theme == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: themes.MsgInvalidTheme})
		return
	}

	res, err := s.themes.Generate(r.Context(), *req.Theme, clientIP(r, s.opts.TrustXFF))
	var rle *themes.RateLimitError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, themes.ErrInvalidTheme):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: themes.MsgInvalidTheme})
	case errors.As(err, &rle):
		w.Header().Set("Retry-After", retryAfterSeconds(rle.RetryAfter))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: themes.MsgRateLimited})
	default:
		ui.LogStatus("error", "Theme request failed: "+err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: s.now().UTC().Format(isoMillis),
	})
}

// retryAfterSeconds rounds up to whole seconds, at least 1.
func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ui.LogStatus("error", "Failed to write response: "+err.Error())
	}
}
