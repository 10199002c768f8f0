package report

import (
	"context"

	"diagnosis-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListReports(ctx context.Context, sc model.Scope, input ListReportsInput) (ListReportsOutput, error)
	GetReport(ctx context.Context, sc model.Scope, input GetReportInput) (ReportOutput, error)
	UpdateNotes(ctx context.Context, sc model.Scope, input UpdateNotesInput) (ReportOutput, error)
	GetAnalytics(ctx context.Context, sc model.Scope, input GetAnalyticsInput) (AnalyticsOutput, error)

	// Compile assembles the export document of an already loaded report.
	Compile(ctx context.Context, sc model.Scope, input CompileInput) (model.Document, error)
	// Preview loads a report and compiles it.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (model.Document, error)
}
