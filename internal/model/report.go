package model

import "time"

// Category is a tumor classification label produced by a classifier.
type Category = string

const (
	CategoryGlioma     Category = "Glioma"
	CategoryMeningioma Category = "Meningioma"
	CategoryNoTumor    Category = "No Tumor"
	CategoryPituitary  Category = "Pituitary"
)

// CanonicalCategories is the fixed display order of confidence breakdowns.
var CanonicalCategories = []Category{
	CategoryGlioma,
	CategoryMeningioma,
	CategoryNoTumor,
	CategoryPituitary,
}

// ConfidenceMap maps a category to the score a classifier assigned it.
type ConfidenceMap map[Category]float64

// Lookup returns the score recorded for category.
// A nil map behaves as an empty one.
func (m ConfidenceMap) Lookup(category Category) (float64, bool) {
	v, ok := m[category]
	return v, ok
}

// ModelResult is the output of one classifier for one scan.
type ModelResult struct {
	PredictedCategory Category
	Confidence        ConfidenceMap
}

// Report is a persisted diagnostic record.
type Report struct {
	ID              int64
	PatientUsername string
	Filename        string
	CreatedAt       time.Time
	ModelA          ModelResult
	ModelB          ModelResult
	VisualizationA  string
	VisualizationB  string
	ClinicianNotes  string
}

// ReportAnalytics summarizes the reports matching a patient filter.
type ReportAnalytics struct {
	TotalReports     int64
	MostRecentCaseAt *time.Time
}
