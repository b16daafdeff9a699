package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger     *slog.Logger
	configured func() bool
	version    string
}

// NewHealthHandler создает handler; configured сообщает, включена ли синхронизация
func NewHealthHandler(logger *slog.Logger, version string, configured func() bool) *HealthHandler {
	return &HealthHandler{
		logger:     logger,
		version:    version,
		configured: configured,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	if h.configured != nil {
		resp.Configured = h.configured()
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}
