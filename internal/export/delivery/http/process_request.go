package http

import (
	"strconv"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processExportRequest(c *gin.Context) (exportReq, model.Scope, error) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("report_id"), 10, 64)
	if err != nil || id <= 0 {
		return exportReq{}, model.Scope{}, errInvalidReportID
	}

	// The body is optional
	var req exportReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "export.delivery.http.processExportRequest: ShouldBindJSON failed: %v", err)
			return exportReq{}, model.Scope{}, errWrongBody
		}
	}
	req.ReportID = id

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processJobRequest(c *gin.Context) (jobReq, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return jobReq{JobID: c.Param("job_id")}, sc
}
