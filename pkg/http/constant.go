package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryWait is the default wait before the first retry; later waits double.
	DefaultRetryWait = 1 * time.Second
)
