package http

import (
	"errors"

	"diagnosis-srv/internal/export"
	pkgErrors "diagnosis-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidReportID    = pkgErrors.NewHTTPError(400, "Invalid report ID")
	errInvalidJobID       = pkgErrors.NewHTTPError(400, "Invalid export job ID")
	errJobNotFound        = pkgErrors.NewHTTPError(404, "Export job not found")
	errNotReady           = pkgErrors.NewHTTPError(409, "Export is not ready")
	errRecordStoreFailure = pkgErrors.NewHTTPError(503, "Export storage is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrInvalidReportID):
		return errInvalidReportID
	case errors.Is(err, export.ErrInvalidJobID):
		return errInvalidJobID
	case errors.Is(err, export.ErrJobNotFound):
		return errJobNotFound
	case errors.Is(err, export.ErrNotReady):
		return errNotReady
	case errors.Is(err, export.ErrRecordStoreFailure):
		return errRecordStoreFailure
	default:
		panic(err)
	}
}
