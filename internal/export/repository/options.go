package repository

type CreateExportOptions struct {
	ID       string
	ReportID int64
	UserID   string
	FileName string
}

type UpdateCompletedOptions struct {
	ID               string
	FileURL          string
	FileSizeBytes    int64
	GenerationTimeMs int64
}

type UpdateFailedOptions struct {
	ID           string
	ErrorMessage string
}
