package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadyChecker reports whether the storage backend is reachable.
// The memory driver always is; the postgres driver pings the pool.
type ReadyChecker func(ctx context.Context) error

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	ready ReadyChecker
}

// NewHealthHandler creates a new health handler. ready may be nil for
// drivers with no external dependency.
func NewHealthHandler(ready ReadyChecker) *HealthHandler {
	return &HealthHandler{ready: ready}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": map[string]string{
					"storage": "unhealthy: " + err.Error(),
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"storage": "healthy",
		},
	})
}
