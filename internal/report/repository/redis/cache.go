package redis

import (
	"context"
	"encoding/json"
	"time"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report/repository"
	pkgRedis "diagnosis-srv/pkg/redis"
)

const (
	listKeyPrefix  = "reports:list:"
	listKeyAll     = "*all*"
	listKeyPattern = listKeyPrefix + "*"
)

type cachedResult struct {
	PredictedCategory string             `json:"predicted_category"`
	Confidence        map[string]float64 `json:"confidence"`
}

type cachedReport struct {
	ID              int64        `json:"id"`
	PatientUsername string       `json:"patient_username"`
	Filename        string       `json:"filename"`
	CreatedAt       time.Time    `json:"created_at"`
	ModelA          cachedResult `json:"model_a"`
	ModelB          cachedResult `json:"model_b"`
	VisualizationA  string       `json:"visualization_a"`
	VisualizationB  string       `json:"visualization_b"`
	ClinicianNotes  string       `json:"clinician_notes"`
}

func listKey(patientUsername string) string {
	if patientUsername == "" {
		return listKeyPrefix + listKeyAll
	}
	return listKeyPrefix + "patient:" + patientUsername
}

func (r *implCacheRepository) GetReports(ctx context.Context, patientUsername string) ([]model.Report, error) {
	data, err := r.redis.Get(ctx, listKey(patientUsername))
	if pkgRedis.IsNil(err) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var cached []cachedReport
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReports: Failed to unmarshal reports: %v", err)
		return nil, err
	}

	reports := make([]model.Report, 0, len(cached))
	for _, c := range cached {
		reports = append(reports, fromCached(c))
	}
	return reports, nil
}

func (r *implCacheRepository) SaveReports(ctx context.Context, patientUsername string, reports []model.Report) error {
	cached := make([]cachedReport, 0, len(reports))
	for _, rpt := range reports {
		cached = append(cached, toCached(rpt))
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, listKey(patientUsername), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveReports: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// InvalidateReports drops every cached listing.
func (r *implCacheRepository) InvalidateReports(ctx context.Context) error {
	n, err := r.redis.DeleteByPattern(ctx, listKeyPattern)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.InvalidateReports: Failed to delete cached lists: %v", err)
		return err
	}
	r.l.Debugf(ctx, "report.repository.redis.InvalidateReports: Dropped %d cached lists", n)
	return nil
}

func toCached(rpt model.Report) cachedReport {
	return cachedReport{
		ID:              rpt.ID,
		PatientUsername: rpt.PatientUsername,
		Filename:        rpt.Filename,
		CreatedAt:       rpt.CreatedAt,
		ModelA:          cachedResult{PredictedCategory: rpt.ModelA.PredictedCategory, Confidence: rpt.ModelA.Confidence},
		ModelB:          cachedResult{PredictedCategory: rpt.ModelB.PredictedCategory, Confidence: rpt.ModelB.Confidence},
		VisualizationA:  rpt.VisualizationA,
		VisualizationB:  rpt.VisualizationB,
		ClinicianNotes:  rpt.ClinicianNotes,
	}
}

func fromCached(c cachedReport) model.Report {
	return model.Report{
		ID:              c.ID,
		PatientUsername: c.PatientUsername,
		Filename:        c.Filename,
		CreatedAt:       c.CreatedAt,
		ModelA:          model.ModelResult{PredictedCategory: c.ModelA.PredictedCategory, Confidence: c.ModelA.Confidence},
		ModelB:          model.ModelResult{PredictedCategory: c.ModelB.PredictedCategory, Confidence: c.ModelB.Confidence},
		VisualizationA:  c.VisualizationA,
		VisualizationB:  c.VisualizationB,
		ClinicianNotes:  c.ClinicianNotes,
	}
}
