package postgre

const exportColumns = `id, report_id, user_id, status, error_message, file_name, file_url,
	file_size_bytes, generation_time_ms, created_at, completed_at, updated_at`

const (
	createExportQuery = `INSERT INTO exports (id, report_id, user_id, status, file_name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	RETURNING ` + exportColumns

	getExportByIDQuery = `SELECT ` + exportColumns + ` FROM exports WHERE id = $1`

	updateCompletedQuery = `UPDATE exports
	SET status = $2, file_url = $3, file_size_bytes = $4, generation_time_ms = $5,
		error_message = NULL, completed_at = NOW(), updated_at = NOW()
	WHERE id = $1`

	// Only exports still in progress can fail
	updateFailedQuery = `UPDATE exports SET status = $2, error_message = $3, updated_at = NOW() WHERE id = $1 AND status = $4`

	// Only completed exports can be closed
	updateClosedQuery = `UPDATE exports SET status = $2, updated_at = NOW() WHERE id = $1 AND status IN ($3, $2)`
)
