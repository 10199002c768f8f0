package usecase

import (
	"strings"
	"time"

	"diagnosis-srv/internal/visualization"
	pkghttp "diagnosis-srv/pkg/http"
	"diagnosis-srv/pkg/log"
)

const defaultMaxImageBytes = 10 << 20

type implUseCase struct {
	client pkghttp.IClient
	l      log.Logger
	config visualization.Config
}

// NewFetchClient builds the HTTP client for image retrieval. Each image is a
// single GET: failures surface as an unavailable image, never as a retry.
func NewFetchClient(timeout time.Duration, maxImageBytes int64) pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:      timeout,
		Retries:      0,
		MaxBodyBytes: maxImageBytes,
	})
}

// New creates a new visualization UseCase implementation.
func New(client pkghttp.IClient, l log.Logger, cfg visualization.Config) visualization.UseCase {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = defaultMaxImageBytes
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &implUseCase{
		client: client,
		l:      l,
		config: cfg,
	}
}
