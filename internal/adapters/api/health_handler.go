package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/ports"
)

// HealthResponse is the aggregated health report
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /health; only an unhealthy component fails the check
func (s *HTTPServerAdapter) health(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	overall := infrastructure.Overall(results)

	status := http.StatusOK
	if overall == infrastructure.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, HealthResponse{Status: overall, Components: results})
}
