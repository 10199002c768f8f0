package repository

// ListReportsOptions filters report listings. An empty PatientUsername matches every patient.
type ListReportsOptions struct {
	PatientUsername string
}

type UpdateNotesOptions struct {
	ReportID int64
	Notes    string
}

type GetAnalyticsOptions struct {
	PatientUsername string
}
