package usecase

import (
	"time"

	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/export/repository"
	"diagnosis-srv/internal/report"
	"diagnosis-srv/pkg/log"
	"diagnosis-srv/pkg/minio"
	"diagnosis-srv/pkg/pdf"

	"github.com/google/uuid"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	reportUC report.UseCase
	producer pdf.IProducer
	storage  minio.MinIO
	events   export.Producer
	l        log.Logger
	config   export.Config

	tracker *jobTracker
	now     func() time.Time
	newID   func() string
}

// New creates a new export UseCase implementation. events may be nil.
func New(
	repo repository.PostgresRepository,
	reportUC report.UseCase,
	producer pdf.IProducer,
	storage minio.MinIO,
	events export.Producer,
	l log.Logger,
	cfg export.Config,
) export.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = export.DefaultTimeout
	}
	if cfg.JobRetention <= 0 {
		cfg.JobRetention = export.DefaultJobRetention
	}
	if cfg.DownloadExpiry <= 0 {
		cfg.DownloadExpiry = export.DefaultDownloadExpiry
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = export.DefaultSweepInterval
	}

	return &implUseCase{
		repo:     repo,
		reportUC: reportUC,
		producer: producer,
		storage:  storage,
		events:   events,
		l:        l,
		config:   cfg,
		tracker:  newJobTracker(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
