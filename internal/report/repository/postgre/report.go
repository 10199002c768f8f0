package postgre

import (
	"context"
	"database/sql"
	"errors"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report/repository"
)

// ListReports - List reports, most recent first.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.Report, error) {
	query, args := buildListReportsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Report, 0)
	for rows.Next() {
		row, err := scanReportRow(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, err
		}
		result = append(result, r.buildReport(ctx, row))
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to iterate reports: %v", err)
		return nil, err
	}

	return result, nil
}

// GetReportByID - Get report by primary key.
func (r *implRepository) GetReportByID(ctx context.Context, id int64) (model.Report, error) {
	row, err := scanReportRow(r.db.QueryRowContext(ctx, getReportByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: Failed to get report: %v", err)
		return model.Report{}, err
	}

	return r.buildReport(ctx, row), nil
}

// UpdateNotes - Replace the doctor notes of a report and return the updated record.
func (r *implRepository) UpdateNotes(ctx context.Context, opts repository.UpdateNotesOptions) (model.Report, error) {
	row, err := scanReportRow(r.db.QueryRowContext(ctx, updateNotesQuery, opts.ReportID, opts.Notes))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateNotes: Failed to update report: %v", err)
		return model.Report{}, repository.ErrReportUpdateFailed
	}

	return r.buildReport(ctx, row), nil
}

// GetAnalytics - Count reports and find the most recent case.
func (r *implRepository) GetAnalytics(ctx context.Context, opts repository.GetAnalyticsOptions) (model.ReportAnalytics, error) {
	query, args := buildAnalyticsQuery(opts)

	var total int64
	var mostRecent sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &mostRecent); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetAnalytics: Failed to query analytics: %v", err)
		return model.ReportAnalytics{}, err
	}

	out := model.ReportAnalytics{TotalReports: total}
	if mostRecent.Valid {
		t := mostRecent.Time
		out.MostRecentCaseAt = &t
	}
	return out, nil
}
