package http

import (
	"diagnosis-srv/internal/middleware"
	"diagnosis-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.Use(mw.Auth())
	{
		reports.GET("", h.ListReports)
		reports.GET("/analytics", h.GetAnalytics)
		reports.GET("/:report_id", h.GetReport)
		reports.PUT("/:report_id", mw.RequireRole(model.RoleDoctor), h.UpdateNotes)
		reports.GET("/:report_id/preview", h.Preview)
	}
}
