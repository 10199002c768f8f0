package usecase

import (
	"time"

	"diagnosis-srv/internal/report"
	"diagnosis-srv/internal/report/repository"
	"diagnosis-srv/internal/visualization"
	"diagnosis-srv/pkg/log"
)

type implUseCase struct {
	repo   repository.PostgresRepository
	cache  repository.CacheRepository
	vis    visualization.UseCase
	l      log.Logger
	config report.Config
}

// New creates a new report UseCase implementation.
// cache may be nil, in which case listings always hit the database.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	vis visualization.UseCase,
	l log.Logger,
	cfg report.Config,
) report.UseCase {
	if cfg.ModelAName == "" {
		cfg.ModelAName = report.DefaultModelAName
	}
	if cfg.ModelBName == "" {
		cfg.ModelBName = report.DefaultModelBName
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &implUseCase{
		repo:   repo,
		cache:  cache,
		vis:    vis,
		l:      l,
		config: cfg,
	}
}
