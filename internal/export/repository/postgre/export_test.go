package postgre

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"diagnosis-srv/internal/export/repository"
	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow []interface{}

func (f fakeRow) Scan(dest ...interface{}) error {
	if len(dest) != len(f) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f[i].(string)
		case *int64:
			*p = f[i].(int64)
		case *time.Time:
			*p = f[i].(time.Time)
		case *sql.NullString:
			*p = f[i].(sql.NullString)
		case *sql.NullInt64:
			*p = f[i].(sql.NullInt64)
		case *sql.NullTime:
			*p = f[i].(sql.NullTime)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

type fakeResult struct {
	n   int64
	err error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.n, f.err }

func TestExportColumnsMatchRow(t *testing.T) {
	cols := strings.Split(exportColumns, ",")
	assert.Len(t, cols, 12)
	assert.Contains(t, getExportByIDQuery, "WHERE id = $1")
	assert.True(t, strings.HasSuffix(createExportQuery, exportColumns))
}

func TestScanAndBuildExportRecord(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	completed := created.Add(3 * time.Second)

	row, err := scanExportRow(fakeRow{
		"job-1", int64(7), "1", model.ExportStatusCompleted,
		sql.NullString{}, sql.NullString{String: "report_7.pdf", Valid: true},
		sql.NullString{String: "exports/job-1/report_7.pdf", Valid: true},
		sql.NullInt64{Int64: 2048, Valid: true}, sql.NullInt64{Int64: 3000, Valid: true},
		created, sql.NullTime{Time: completed, Valid: true}, completed,
	})
	require.NoError(t, err)

	rec := buildExportRecord(row)
	assert.Equal(t, "job-1", rec.ID)
	assert.Equal(t, int64(7), rec.ReportID)
	assert.Equal(t, "report_7.pdf", rec.FileName)
	assert.Equal(t, "exports/job-1/report_7.pdf", rec.FileURL)
	assert.Equal(t, int64(2048), rec.FileSizeBytes)
	assert.Empty(t, rec.ErrorMessage)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, completed, *rec.CompletedAt)
	assert.Equal(t, model.ExportReady, rec.State())
}

func TestBuildExportRecordProcessing(t *testing.T) {
	rec := buildExportRecord(exportRow{ID: "job-2", Status: model.ExportStatusProcessing})
	assert.Nil(t, rec.CompletedAt)
	assert.Equal(t, model.ExportCompiling, rec.State())
}

func TestCheckUpdate(t *testing.T) {
	r := &implRepository{l: log.NewNop()}
	ctx := t.Context()

	assert.NoError(t, r.checkUpdate(ctx, "op", fakeResult{n: 1}, nil))
	assert.ErrorIs(t, r.checkUpdate(ctx, "op", fakeResult{n: 0}, nil), repository.ErrExportNotFound)
	assert.ErrorIs(t, r.checkUpdate(ctx, "op", nil, errors.New("conn reset")), repository.ErrFailedToUpdate)
	assert.ErrorIs(t, r.checkUpdate(ctx, "op", fakeResult{err: errors.New("driver")}, nil), repository.ErrFailedToUpdate)
}

func TestStatusGuardedUpdates(t *testing.T) {
	assert.True(t, strings.HasSuffix(updateFailedQuery, "WHERE id = $1 AND status = $4"))
	assert.Contains(t, updateClosedQuery, "AND status IN ($3, $2)")
}
