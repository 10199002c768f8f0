package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrInvalidReportID    = errors.New("invalid report id")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrCompilationFailed  = errors.New("report compilation failed")
	ErrReportStoreFailure = errors.New("report store unavailable")
)
