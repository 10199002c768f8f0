package repository

import "errors"

var (
	ErrReportNotFound     = errors.New("repository: report not found")
	ErrReportUpdateFailed = errors.New("repository: failed to update report")
	ErrCacheMiss          = errors.New("repository: cache miss")
)
