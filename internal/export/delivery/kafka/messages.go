package kafka

import "time"

// ExportEventMessage - Kafka message for diagnosis.export.events
type ExportEventMessage struct {
	Event      string    `json:"event"`
	JobID      string    `json:"job_id"`
	ReportID   int64     `json:"report_id"`
	UserID     string    `json:"user_id"`
	State      string    `json:"state"`
	ObjectName string    `json:"object_name,omitempty"`
	SizeBytes  int64     `json:"size_bytes,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
