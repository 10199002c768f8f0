package repository

import (
	"context"

	"diagnosis-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateExport(ctx context.Context, opts CreateExportOptions) (model.ExportRecord, error)
	GetExportByID(ctx context.Context, id string) (model.ExportRecord, error)
	UpdateCompleted(ctx context.Context, opts UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
	UpdateClosed(ctx context.Context, id string) error
}
