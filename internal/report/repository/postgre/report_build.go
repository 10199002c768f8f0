package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"diagnosis-srv/internal/model"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// reportRow mirrors one row of the reports table.
type reportRow struct {
	ID               int64
	PatientUsername  sql.NullString
	Filename         sql.NullString
	CreatedAt        time.Time
	CNNResults       sql.NullString
	CNNConfidence    []byte
	ResNetResults    sql.NullString
	ResNetConfidence []byte
	GradcamCNNPath   sql.NullString
	GradcamResNet    sql.NullString
	DoctorNotes      sql.NullString
}

func scanReportRow(s scanner) (reportRow, error) {
	var row reportRow
	err := s.Scan(
		&row.ID,
		&row.PatientUsername,
		&row.Filename,
		&row.CreatedAt,
		&row.CNNResults,
		&row.CNNConfidence,
		&row.ResNetResults,
		&row.ResNetConfidence,
		&row.GradcamCNNPath,
		&row.GradcamResNet,
		&row.DoctorNotes,
	)
	return row, err
}

// buildReport - Convert a reportRow to model.Report.
// Malformed confidence maps are tolerated and rendered as empty.
func (r *implRepository) buildReport(ctx context.Context, row reportRow) model.Report {
	rpt := model.Report{
		ID:              row.ID,
		PatientUsername: row.PatientUsername.String,
		Filename:        row.Filename.String,
		CreatedAt:       row.CreatedAt,
		ModelA: model.ModelResult{
			PredictedCategory: row.CNNResults.String,
			Confidence:        r.decodeConfidence(ctx, row.ID, row.CNNConfidence),
		},
		ModelB: model.ModelResult{
			PredictedCategory: row.ResNetResults.String,
			Confidence:        r.decodeConfidence(ctx, row.ID, row.ResNetConfidence),
		},
		VisualizationA: row.GradcamCNNPath.String,
		VisualizationB: row.GradcamResNet.String,
		ClinicianNotes: row.DoctorNotes.String,
	}

	for _, res := range []model.ModelResult{rpt.ModelA, rpt.ModelB} {
		if res.PredictedCategory == "" {
			continue
		}
		if _, ok := res.Confidence.Lookup(res.PredictedCategory); !ok {
			r.l.Warnf(ctx, "report.repository.postgre.buildReport: report %d predicts %q without a confidence score", rpt.ID, res.PredictedCategory)
		}
	}

	return rpt
}

func (r *implRepository) decodeConfidence(ctx context.Context, reportID int64, raw []byte) model.ConfidenceMap {
	if len(raw) == 0 {
		return model.ConfidenceMap{}
	}
	var m model.ConfidenceMap
	if err := json.Unmarshal(raw, &m); err != nil {
		r.l.Warnf(ctx, "report.repository.postgre.decodeConfidence: report %d has malformed confidence: %v", reportID, err)
		return model.ConfidenceMap{}
	}
	if m == nil {
		m = model.ConfidenceMap{}
	}
	return m
}
