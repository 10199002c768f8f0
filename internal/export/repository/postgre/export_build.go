package postgre

import (
	"database/sql"
	"time"

	"diagnosis-srv/internal/model"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// exportRow mirrors one row of the exports table.
type exportRow struct {
	ID               string
	ReportID         int64
	UserID           string
	Status           string
	ErrorMessage     sql.NullString
	FileName         sql.NullString
	FileURL          sql.NullString
	FileSizeBytes    sql.NullInt64
	GenerationTimeMs sql.NullInt64
	CreatedAt        time.Time
	CompletedAt      sql.NullTime
	UpdatedAt        time.Time
}

func scanExportRow(s scanner) (exportRow, error) {
	var row exportRow
	err := s.Scan(
		&row.ID,
		&row.ReportID,
		&row.UserID,
		&row.Status,
		&row.ErrorMessage,
		&row.FileName,
		&row.FileURL,
		&row.FileSizeBytes,
		&row.GenerationTimeMs,
		&row.CreatedAt,
		&row.CompletedAt,
		&row.UpdatedAt,
	)
	return row, err
}

// buildExportRecord - Convert an exportRow to model.ExportRecord.
func buildExportRecord(row exportRow) model.ExportRecord {
	rec := model.ExportRecord{
		ID:               row.ID,
		ReportID:         row.ReportID,
		UserID:           row.UserID,
		Status:           row.Status,
		ErrorMessage:     row.ErrorMessage.String,
		FileName:         row.FileName.String,
		FileURL:          row.FileURL.String,
		FileSizeBytes:    row.FileSizeBytes.Int64,
		GenerationTimeMs: row.GenerationTimeMs.Int64,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		rec.CompletedAt = &t
	}
	return rec
}
