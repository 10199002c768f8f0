package model

import "time"

// ExportState is the lifecycle state of an export job.
type ExportState string

const (
	ExportIdle      ExportState = "idle"
	ExportCompiling ExportState = "compiling"
	ExportReady     ExportState = "ready"
	ExportFailed    ExportState = "failed"
	ExportClosed    ExportState = "closed"
)

var exportTransitions = map[ExportState][]ExportState{
	ExportIdle:      {ExportCompiling},
	ExportCompiling: {ExportReady, ExportFailed},
	ExportReady:     {ExportClosed},
}

// CanTransitionTo reports whether s may move to next.
func (s ExportState) CanTransitionTo(next ExportState) bool {
	for _, allowed := range exportTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ExportState) IsTerminal() bool {
	return len(exportTransitions[s]) == 0
}

// ExportJob is the in-memory progress of one export.
type ExportJob struct {
	ID           string
	ReportID     int64
	UserID       string
	State        ExportState
	Error        string
	ArtifactName string
	ObjectName   string
	Size         int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Export record statuses.
const (
	ExportStatusProcessing = "PROCESSING"
	ExportStatusCompleted  = "COMPLETED"
	ExportStatusFailed     = "FAILED"
	ExportStatusClosed     = "CLOSED"
)

// ExportRecord is the persisted history of an export.
type ExportRecord struct {
	ID               string
	ReportID         int64
	UserID           string
	Status           string
	ErrorMessage     string
	FileName         string
	FileURL          string
	FileSizeBytes    int64
	GenerationTimeMs int64
	CreatedAt        time.Time
	CompletedAt      *time.Time
	UpdatedAt        time.Time
}

// State maps the persisted status to the job state it represents.
func (r ExportRecord) State() ExportState {
	switch r.Status {
	case ExportStatusCompleted:
		return ExportReady
	case ExportStatusFailed:
		return ExportFailed
	case ExportStatusClosed:
		return ExportClosed
	default:
		return ExportCompiling
	}
}
