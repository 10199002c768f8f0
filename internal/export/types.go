package export

import (
	"time"

	"diagnosis-srv/internal/model"
)

// GenericFailureMessage is the only failure text exposed to callers.
const GenericFailureMessage = "Failed to generate report"

// ObjectPrefix is the storage prefix of every export artifact.
const ObjectPrefix = "exports"

// Event names.
const (
	EventReady  = "export.ready"
	EventFailed = "export.failed"
)

const (
	DefaultTimeout        = 2 * time.Minute
	DefaultAutoCloseAfter = 30 * time.Minute
	DefaultJobRetention   = 24 * time.Hour
	DefaultDownloadExpiry = 15 * time.Minute
	DefaultSweepInterval  = time.Minute
)

type Config struct {
	Bucket string
	// Timeout bounds one background export.
	Timeout time.Duration
	// AutoCloseAfter closes ready jobs nobody downloaded. Zero disables it.
	AutoCloseAfter time.Duration
	JobRetention   time.Duration
	DownloadExpiry time.Duration
	SweepInterval  time.Duration
}

type ExportInput struct {
	ReportID      int64
	NotesOverride string
}

type ExportOutput struct {
	Job model.ExportJob
}

type GetJobInput struct {
	JobID string
}

type JobOutput struct {
	Job model.ExportJob
}

type DownloadInput struct {
	JobID string
}

type DownloadOutput struct {
	URL       string
	FileName  string
	ExpiresAt time.Time
}

type DismissInput struct {
	JobID string
}

// ExportEvent describes a finished export.
type ExportEvent struct {
	Event      string
	JobID      string
	ReportID   int64
	UserID     string
	State      model.ExportState
	ObjectName string
	Size       int64
	Error      string
	OccurredAt time.Time
}
