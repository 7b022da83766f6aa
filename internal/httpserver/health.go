package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"caretask/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "caretask"
)

func (srv HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":         status,
		"service":        ServiceName,
		"version":        HealthVersion,
		"environment":    srv.environment,
		"uptime_seconds": int64(time.Since(srv.startedAt).Seconds()),
	})
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe(c, "healthy") }

// readyCheck reports ready once routes are mapped, which New guarantees.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe(c, "ready") }

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe(c, "alive") }
