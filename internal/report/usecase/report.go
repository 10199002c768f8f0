package usecase

import (
	"context"
	"errors"
	"strings"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report"
	"diagnosis-srv/internal/report/repository"
)

// ListReports returns reports ordered by creation time, most recent first.
// Patients always see their own reports regardless of the requested filter.
func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ListReportsOutput, error) {
	patient, err := uc.patientFilter(sc, input.PatientUsername)
	if err != nil {
		return report.ListReportsOutput{}, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetReports(ctx, patient)
		if err == nil {
			return report.ListReportsOutput{Reports: cached}, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "report.usecase.ListReports: Failed to read cache: %v", err)
		}
	}

	reports, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{PatientUsername: patient})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: Failed to list reports: %v", err)
		return report.ListReportsOutput{}, report.ErrReportStoreFailure
	}

	if uc.cache != nil {
		if err := uc.cache.SaveReports(ctx, patient, reports); err != nil {
			uc.l.Warnf(ctx, "report.usecase.ListReports: Failed to save cache: %v", err)
		}
	}

	return report.ListReportsOutput{Reports: reports}, nil
}

// GetReport returns a single report visible to the caller.
func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (report.ReportOutput, error) {
	rpt, err := uc.loadReport(ctx, sc, input.ReportID)
	if err != nil {
		return report.ReportOutput{}, err
	}
	return report.ReportOutput{Report: rpt}, nil
}

// UpdateNotes replaces the doctor notes of a report. Doctors only.
func (uc *implUseCase) UpdateNotes(ctx context.Context, sc model.Scope, input report.UpdateNotesInput) (report.ReportOutput, error) {
	if !sc.IsDoctor() {
		return report.ReportOutput{}, report.ErrForbidden
	}
	if input.ReportID <= 0 {
		return report.ReportOutput{}, report.ErrInvalidReportID
	}

	rpt, err := uc.repo.UpdateNotes(ctx, repository.UpdateNotesOptions{
		ReportID: input.ReportID,
		Notes:    input.Notes,
	})
	if errors.Is(err, repository.ErrReportNotFound) {
		return report.ReportOutput{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.UpdateNotes: Failed to update notes of report %d: %v", input.ReportID, err)
		return report.ReportOutput{}, report.ErrReportStoreFailure
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateReports(ctx); err != nil {
			uc.l.Warnf(ctx, "report.usecase.UpdateNotes: Failed to invalidate cache: %v", err)
		}
	}

	return report.ReportOutput{Report: rpt}, nil
}

// GetAnalytics counts the caller's visible reports and finds the most recent case.
func (uc *implUseCase) GetAnalytics(ctx context.Context, sc model.Scope, input report.GetAnalyticsInput) (report.AnalyticsOutput, error) {
	patient, err := uc.patientFilter(sc, input.PatientUsername)
	if err != nil {
		return report.AnalyticsOutput{}, err
	}

	analytics, err := uc.repo.GetAnalytics(ctx, repository.GetAnalyticsOptions{PatientUsername: patient})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetAnalytics: Failed to get analytics: %v", err)
		return report.AnalyticsOutput{}, report.ErrReportStoreFailure
	}

	return report.AnalyticsOutput{Analytics: analytics}, nil
}

// Preview loads a report and compiles it without producing an artifact.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input report.PreviewInput) (model.Document, error) {
	rpt, err := uc.loadReport(ctx, sc, input.ReportID)
	if err != nil {
		return model.Document{}, err
	}

	return uc.Compile(ctx, sc, report.CompileInput{
		Report:        rpt,
		NotesOverride: input.NotesOverride,
	})
}

// ----------- Private helpers -----------

// patientFilter resolves the patient a listing is restricted to. "" means every patient.
func (uc *implUseCase) patientFilter(sc model.Scope, requested string) (string, error) {
	switch {
	case sc.IsDoctor():
		return strings.TrimSpace(requested), nil
	case sc.IsPatient():
		return sc.Username, nil
	default:
		return "", report.ErrForbidden
	}
}

// loadReport fetches a report and hides reports of other patients.
func (uc *implUseCase) loadReport(ctx context.Context, sc model.Scope, id int64) (model.Report, error) {
	if !sc.IsDoctor() && !sc.IsPatient() {
		return model.Report{}, report.ErrForbidden
	}
	if id <= 0 {
		return model.Report{}, report.ErrInvalidReportID
	}

	rpt, err := uc.repo.GetReportByID(ctx, id)
	if errors.Is(err, repository.ErrReportNotFound) {
		return model.Report{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.loadReport: Failed to get report %d: %v", id, err)
		return model.Report{}, report.ErrReportStoreFailure
	}

	if sc.IsPatient() && rpt.PatientUsername != sc.Username {
		return model.Report{}, report.ErrReportNotFound
	}

	return rpt, nil
}
