package http

import (
	"diagnosis-srv/internal/export"
	"diagnosis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Export starts a background export of a report.
// POST /api/v1/reports/:report_id/exports
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Accepted(c, newJobResp(o.Job))
}

// GET /api/v1/exports/:job_id
func (h *handler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processJobRequest(c)

	o, err := h.uc.GetJob(ctx, sc, export.GetJobInput{JobID: req.JobID})
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GetJob: usecase GetJob failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newJobResp(o.Job))
}

// Download returns a presigned link to the exported PDF.
// GET /api/v1/exports/:job_id/download
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processJobRequest(c)

	o, err := h.uc.Download(ctx, sc, export.DownloadInput{JobID: req.JobID})
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDownloadResp(o))
}

// Dismiss closes a ready export.
// DELETE /api/v1/exports/:job_id
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processJobRequest(c)

	if err := h.uc.Dismiss(ctx, sc, export.DismissInput{JobID: req.JobID}); err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Dismiss: usecase Dismiss failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
