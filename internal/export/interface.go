package export

import (
	"context"

	"diagnosis-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Export starts a background export of a report and returns the compiling job.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
	GetJob(ctx context.Context, sc model.Scope, input GetJobInput) (JobOutput, error)
	// Download issues a presigned link to the artifact of a completed export.
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
	Dismiss(ctx context.Context, sc model.Scope, input DismissInput) error

	// RunSweeper auto-closes expired ready jobs and drops old snapshots until ctx is done.
	RunSweeper(ctx context.Context)
}

// Producer publishes export lifecycle events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishExportEvent(ctx context.Context, event ExportEvent) error
}
