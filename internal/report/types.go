package report

import (
	"fmt"
	"time"

	"diagnosis-srv/internal/model"
)

const (
	DocumentTitle     = "Brain Tumor Classification Report"
	SummaryTitle      = "Predictions"
	NotesTitle        = "Doctor Notes"
	ImageNotice       = "Image could not be loaded"
	UnknownPatient    = "Unknown"
	NotAvailable      = "N/A"
	DefaultModelAName = "Model A"
	DefaultModelBName = "Model B"
	DateLayout        = "2006-01-02 15:04:05 MST"
)

// BreakdownTitle returns the caption of a model's confidence table.
func BreakdownTitle(modelName string) string {
	return fmt.Sprintf("%s Confidence Scores", modelName)
}

// VisualizationTitle returns the title of a model's saliency page.
func VisualizationTitle(modelName string) string {
	return fmt.Sprintf("%s Visualization", modelName)
}

// Config holds presentation settings of compiled documents.
type Config struct {
	ModelAName string
	ModelBName string
	Location   *time.Location
}

type ListReportsInput struct {
	PatientUsername string
}

type ListReportsOutput struct {
	Reports []model.Report
}

type GetReportInput struct {
	ReportID int64
}

type ReportOutput struct {
	Report model.Report
}

type UpdateNotesInput struct {
	ReportID int64
	Notes    string
}

type GetAnalyticsInput struct {
	PatientUsername string
}

type AnalyticsOutput struct {
	Analytics model.ReportAnalytics
}

// CompileInput carries a loaded report. A non-empty NotesOverride replaces the stored notes.
type CompileInput struct {
	Report        model.Report
	NotesOverride string
}

type PreviewInput struct {
	ReportID      int64
	NotesOverride string
}
