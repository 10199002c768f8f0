package http

import (
	"errors"
	"net/http"
	"time"
)

// ErrBodyTooLarge is returned when a response body exceeds ClientConfig.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("http: response body too large")

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	// MaxBodyBytes caps the response body size; zero means unlimited.
	MaxBodyBytes int64
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
