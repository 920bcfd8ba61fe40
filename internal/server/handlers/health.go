package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/helpmap/internal/server/response"
)

// HandleStatus handles GET /status.
// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} object "{\"status\": \"healthy\"}"
// @Router /status [get].
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.MethodNotAllowed(w, r.Method)
		return
	}
	response.Raw(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// HandleReady handles GET /ready.
// @Summary Readiness check
// @Description Readiness check including registry and cache status
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	if h.registry == nil || h.registry.Len() == 0 {
		response.ServiceUnavailable(w, "Help registry not available")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"topics": h.registry.Len(),
		"cache": map[string]any{
			"items": h.cache.ItemCount(),
		},
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
