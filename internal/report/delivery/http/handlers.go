package http

import (
	"diagnosis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListReports lists reports, most recent first.
// GET /api/v1/reports?username=
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// GetAnalytics returns the report count and the most recent case date.
// GET /api/v1/reports/analytics?username=
func (h *handler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetAnalyticsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetAnalytics: processGetAnalyticsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetAnalytics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetAnalytics: usecase GetAnalytics failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyticsResp(o))
}

// GET /api/v1/reports/:report_id
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: processGetReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newReportResp(o.Report))
}

// UpdateNotes replaces the doctor notes of a report.
// PUT /api/v1/reports/:report_id
func (h *handler) UpdateNotes(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateNotesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UpdateNotes: processUpdateNotesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateNotes(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UpdateNotes: usecase UpdateNotes failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newReportResp(o.Report))
}

// Preview returns the compiled page descriptors of a report.
// GET /api/v1/reports/:report_id/preview
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPreviewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Preview: processPreviewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	doc, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Preview: usecase Preview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, doc)
}
