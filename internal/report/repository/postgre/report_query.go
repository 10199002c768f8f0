package postgre

import (
	"fmt"
	"strings"

	"diagnosis-srv/internal/report/repository"
)

const reportColumns = `id, patient_username, filename, created_at,
	cnn_results, cnn_confidence, resnet_results, resnet_confidence,
	gradcam_cnn_path, gradcam_resnet_path, doctor_notes`

const (
	getReportByIDQuery = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	updateNotesQuery   = `UPDATE reports SET doctor_notes = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + reportColumns
)

// patientFilter returns the WHERE clause matching opts.PatientUsername, if any.
func patientFilter(patientUsername string, args []interface{}) (string, []interface{}) {
	if patientUsername == "" {
		return "", args
	}
	args = append(args, patientUsername)
	return fmt.Sprintf(" WHERE patient_username = $%d", len(args)), args
}

// buildListReportsQuery - Build query for ListReports.
func buildListReportsQuery(opts repository.ListReportsOptions) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(reportColumns)
	sb.WriteString(" FROM reports")

	where, args := patientFilter(opts.PatientUsername, nil)
	sb.WriteString(where)

	// Most recent first; id breaks ties between uploads of the same instant
	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	return sb.String(), args
}

// buildAnalyticsQuery - Build query for GetAnalytics.
func buildAnalyticsQuery(opts repository.GetAnalyticsOptions) (string, []interface{}) {
	where, args := patientFilter(opts.PatientUsername, nil)
	return "SELECT COUNT(*), MAX(created_at) FROM reports" + where, args
}
