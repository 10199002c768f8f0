package httpserver

import (
	"net/http"

	"diagnosis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "diagnosis-srv"
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func notReady(c *gin.Context, message string, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": message,
		"error":   err.Error(),
	})
}

// readyCheck handles readiness check requests (Postgres, Redis, MinIO).
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		notReady(c, "Database connection failed", err)
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		notReady(c, "Redis connection failed", err)
		return
	}
	if err := srv.minioClient.HealthCheck(ctx); err != nil {
		notReady(c, "Object storage connection failed", err)
		return
	}

	events := "disabled"
	if srv.kafkaProducer != nil {
		events = "connected"
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			events = "unhealthy"
		}
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
		"storage":  "connected",
		"events":   events,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
