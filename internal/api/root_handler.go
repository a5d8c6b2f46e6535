package api

import (
	_ "embed"
	"log/slog"
	"net/http"
)

// endpointsJSON is the catalog served from GET /api, describing every
// endpoint, its query parameters and an example response.
//
//go:embed endpoints.json
var endpointsJSON []byte

// RootHandler serves the API's self-description.
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a RootHandler. A nil logger falls back to
// slog.Default.
func NewRootHandler(logger *slog.Logger) *RootHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RootHandler{
		logger: logger.With(slog.String("component", "root_handler")),
	}
}

// Get handles GET /api.
func (h *RootHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(endpointsJSON); err != nil {
		h.logger.Error("failed to write endpoint catalog", slog.String("error", err.Error()))
	}
}
