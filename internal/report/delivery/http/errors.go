package http

import (
	"errors"

	"diagnosis-srv/internal/report"
	pkgErrors "diagnosis-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidReportID    = pkgErrors.NewHTTPError(400, "Invalid report ID")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errForbidden          = pkgErrors.NewHTTPError(403, "You are not allowed to access this report")
	errCompilationFailed  = pkgErrors.NewHTTPError(500, "Failed to generate report")
	errReportStoreFailure = pkgErrors.NewHTTPError(503, "Report store is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidReportID):
		return errInvalidReportID
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrForbidden):
		return errForbidden
	case errors.Is(err, report.ErrCompilationFailed):
		return errCompilationFailed
	case errors.Is(err, report.ErrReportStoreFailure):
		return errReportStoreFailure
	default:
		panic(err)
	}
}
