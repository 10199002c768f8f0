package http

import (
	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/response"
)

type exportReq struct {
	ReportID    int64  `json:"-"`
	DoctorNotes string `json:"doctor_notes"`
}

func (r exportReq) toInput() export.ExportInput {
	return export.ExportInput{
		ReportID:      r.ReportID,
		NotesOverride: r.DoctorNotes,
	}
}

type jobReq struct {
	JobID string
}

type jobResp struct {
	ID        string            `json:"id"`
	ReportID  int64             `json:"report_id"`
	State     model.ExportState `json:"state"`
	Error     string            `json:"error,omitempty"`
	FileName  string            `json:"file_name"`
	SizeBytes int64             `json:"size_bytes,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newJobResp(job model.ExportJob) jobResp {
	return jobResp{
		ID:        job.ID,
		ReportID:  job.ReportID,
		State:     job.State,
		Error:     job.Error,
		FileName:  job.ArtifactName,
		SizeBytes: job.Size,
		CreatedAt: response.DateTime(job.CreatedAt),
		UpdatedAt: response.DateTime(job.UpdatedAt),
	}
}

type downloadResp struct {
	URL       string            `json:"url"`
	FileName  string            `json:"file_name"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func newDownloadResp(o export.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       o.URL,
		FileName:  o.FileName,
		ExpiresAt: response.DateTime(o.ExpiresAt),
	}
}
