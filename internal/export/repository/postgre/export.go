package postgre

import (
	"context"
	"database/sql"
	"errors"

	"diagnosis-srv/internal/export/repository"
	"diagnosis-srv/internal/model"
)

// CreateExport - Insert a PROCESSING export record.
func (r *implRepository) CreateExport(ctx context.Context, opts repository.CreateExportOptions) (model.ExportRecord, error) {
	row, err := scanExportRow(r.db.QueryRowContext(ctx, createExportQuery,
		opts.ID, opts.ReportID, opts.UserID, model.ExportStatusProcessing, opts.FileName))
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.CreateExport: Failed to insert export: %v", err)
		return model.ExportRecord{}, repository.ErrFailedToInsert
	}

	return buildExportRecord(row), nil
}

// GetExportByID - Get export record by id.
func (r *implRepository) GetExportByID(ctx context.Context, id string) (model.ExportRecord, error) {
	row, err := scanExportRow(r.db.QueryRowContext(ctx, getExportByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ExportRecord{}, repository.ErrExportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.GetExportByID: Failed to get export: %v", err)
		return model.ExportRecord{}, err
	}

	return buildExportRecord(row), nil
}

func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	res, err := r.db.ExecContext(ctx, updateCompletedQuery,
		opts.ID, model.ExportStatusCompleted, opts.FileURL, opts.FileSizeBytes, opts.GenerationTimeMs)
	return r.checkUpdate(ctx, "UpdateCompleted", res, err)
}

func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	res, err := r.db.ExecContext(ctx, updateFailedQuery, opts.ID, model.ExportStatusFailed, opts.ErrorMessage, model.ExportStatusProcessing)
	return r.checkUpdate(ctx, "UpdateFailed", res, err)
}

func (r *implRepository) UpdateClosed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, updateClosedQuery, id, model.ExportStatusClosed, model.ExportStatusCompleted)
	return r.checkUpdate(ctx, "UpdateClosed", res, err)
}

// checkUpdate maps an UPDATE outcome to repository errors.
func (r *implRepository) checkUpdate(ctx context.Context, op string, res sql.Result, err error) error {
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.%s: Failed to update export: %v", op, err)
		return repository.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.%s: Failed to read affected rows: %v", op, err)
		return repository.ErrFailedToUpdate
	}
	if n == 0 {
		return repository.ErrExportNotFound
	}
	return nil
}
