package repository

import (
	"context"

	"diagnosis-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	ListReports(ctx context.Context, opts ListReportsOptions) ([]model.Report, error)
	GetReportByID(ctx context.Context, id int64) (model.Report, error)
	UpdateNotes(ctx context.Context, opts UpdateNotesOptions) (model.Report, error)
	GetAnalytics(ctx context.Context, opts GetAnalyticsOptions) (model.ReportAnalytics, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetReports(ctx context.Context, patientUsername string) ([]model.Report, error)
	SaveReports(ctx context.Context, patientUsername string, reports []model.Report) error
	InvalidateReports(ctx context.Context) error
}
