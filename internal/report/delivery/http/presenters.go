package http

import (
	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report"
	"diagnosis-srv/pkg/response"
)

type listReportsReq struct {
	Username string
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{PatientUsername: r.Username}
}

type getAnalyticsReq struct {
	Username string
}

func (r getAnalyticsReq) toInput() report.GetAnalyticsInput {
	return report.GetAnalyticsInput{PatientUsername: r.Username}
}

type getReportReq struct {
	ReportID int64
}

func (r getReportReq) toInput() report.GetReportInput {
	return report.GetReportInput{ReportID: r.ReportID}
}

type updateNotesReq struct {
	ReportID    int64   `json:"-"`
	DoctorNotes *string `json:"doctor_notes" binding:"required"`
}

func (r updateNotesReq) toInput() report.UpdateNotesInput {
	return report.UpdateNotesInput{
		ReportID: r.ReportID,
		Notes:    *r.DoctorNotes,
	}
}

type previewReq struct {
	ReportID    int64
	DoctorNotes string
}

func (r previewReq) toInput() report.PreviewInput {
	return report.PreviewInput{
		ReportID:      r.ReportID,
		NotesOverride: r.DoctorNotes,
	}
}

type reportResp struct {
	ID               int64              `json:"id"`
	PatientUsername  string             `json:"patient_username"`
	Filename         string             `json:"filename"`
	CreatedAt        response.DateTime  `json:"created_at"`
	CNNResults       string             `json:"cnn_results"`
	CNNConfidence    map[string]float64 `json:"cnn_confidence"`
	CNNSeverity      string             `json:"cnn_severity"`
	CNNBadge         string             `json:"cnn_badge"`
	ResNetResults    string             `json:"resnet_results"`
	ResNetConfidence map[string]float64 `json:"resnet_confidence"`
	ResNetSeverity   string             `json:"resnet_severity"`
	ResNetBadge      string             `json:"resnet_badge"`
	GradcamCNNPath   string             `json:"gradcam_cnn_path,omitempty"`
	GradcamResNet    string             `json:"gradcam_resnet_path,omitempty"`
	DoctorNotes      string             `json:"doctor_notes"`
}

type listReportsResp struct {
	Reports []reportResp `json:"reports"`
}

type analyticsResp struct {
	TotalReports     int64              `json:"total_reports"`
	MostRecentCaseAt *response.DateTime `json:"most_recent_case_at"`
}

func newReportResp(rpt model.Report) reportResp {
	sevA := model.Classify(rpt.ModelA.PredictedCategory)
	sevB := model.Classify(rpt.ModelB.PredictedCategory)

	return reportResp{
		ID:               rpt.ID,
		PatientUsername:  rpt.PatientUsername,
		Filename:         rpt.Filename,
		CreatedAt:        response.DateTime(rpt.CreatedAt),
		CNNResults:       rpt.ModelA.PredictedCategory,
		CNNConfidence:    rpt.ModelA.Confidence,
		CNNSeverity:      string(sevA),
		CNNBadge:         sevA.Badge(),
		ResNetResults:    rpt.ModelB.PredictedCategory,
		ResNetConfidence: rpt.ModelB.Confidence,
		ResNetSeverity:   string(sevB),
		ResNetBadge:      sevB.Badge(),
		GradcamCNNPath:   rpt.VisualizationA,
		GradcamResNet:    rpt.VisualizationB,
		DoctorNotes:      rpt.ClinicianNotes,
	}
}

func (h *handler) newListReportsResp(o report.ListReportsOutput) listReportsResp {
	reports := make([]reportResp, 0, len(o.Reports))
	for _, rpt := range o.Reports {
		reports = append(reports, newReportResp(rpt))
	}
	return listReportsResp{Reports: reports}
}

func (h *handler) newAnalyticsResp(o report.AnalyticsOutput) analyticsResp {
	resp := analyticsResp{TotalReports: o.Analytics.TotalReports}
	if o.Analytics.MostRecentCaseAt != nil {
		t := response.DateTime(*o.Analytics.MostRecentCaseAt)
		resp.MostRecentCaseAt = &t
	}
	return resp
}
