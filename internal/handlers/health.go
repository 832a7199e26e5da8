package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck is one dependency checked by GET /health
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Health reports the status of every registered dependency.
// Any failing check turns the response into a 503.
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	services := make(map[string]string, len(h.checks))

	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			logger.Log.Warn("Health check failed", zap.String("service", check.Name), zap.Error(err))
			services[check.Name] = "unhealthy"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		services[check.Name] = "healthy"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"service":   "freedomwall-backend",
		"services":  services,
	})
}
