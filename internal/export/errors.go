package export

import "errors"

var (
	ErrInvalidReportID    = errors.New("invalid report id")
	ErrInvalidJobID       = errors.New("invalid export job id")
	ErrJobNotFound        = errors.New("export job not found")
	ErrNotReady           = errors.New("export is not ready")
	ErrRecordStoreFailure = errors.New("export history unavailable")
)
