package http

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"diagnosis-srv/internal/model"
	pkgErrors "diagnosis-srv/pkg/errors"
	"diagnosis-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const maxNotesLength = 5000

func parseReportID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("report_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidReportID
	}
	return id, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	req := listReportsReq{
		Username: c.Query("username"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetAnalyticsRequest(c *gin.Context) (getAnalyticsReq, model.Scope, error) {
	req := getAnalyticsReq{
		Username: c.Query("username"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, model.Scope, error) {
	id, err := parseReportID(c)
	if err != nil {
		return getReportReq{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return getReportReq{ReportID: id}, sc, nil
}

func (h *handler) processUpdateNotesRequest(c *gin.Context) (updateNotesReq, model.Scope, error) {
	ctx := c.Request.Context()

	id, err := parseReportID(c)
	if err != nil {
		return updateNotesReq{}, model.Scope{}, err
	}

	var req updateNotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processUpdateNotesRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	if utf8.RuneCountInString(*req.DoctorNotes) > maxNotesLength {
		return req, model.Scope{}, pkgErrors.ValidationError{
			Field:   "doctor_notes",
			Message: fmt.Sprintf("must be at most %d characters", maxNotesLength),
		}
	}
	req.ReportID = id

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processPreviewRequest(c *gin.Context) (previewReq, model.Scope, error) {
	id, err := parseReportID(c)
	if err != nil {
		return previewReq{}, model.Scope{}, err
	}

	req := previewReq{
		ReportID:    id,
		DoctorNotes: c.Query("doctor_notes"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
