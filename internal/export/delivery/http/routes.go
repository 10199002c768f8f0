package http

import (
	"diagnosis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/reports/:report_id/exports", mw.Auth(), h.Export)

	exports := r.Group("/exports")
	exports.Use(mw.Auth())
	{
		exports.GET("/:job_id", h.GetJob)
		exports.GET("/:job_id/download", h.Download)
		exports.DELETE("/:job_id", h.Dismiss)
	}
}
