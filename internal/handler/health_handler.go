package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	parserConfigured bool
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(parserConfigured bool) *HealthHandler {
	return &HealthHandler{parserConfigured: parserConfigured}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the service can take extraction requests. The
// service is stateless apart from the in-memory report, so the only readiness
// concern is the oracle credential.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.parserConfigured {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "parser not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
