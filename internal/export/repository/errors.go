package repository

import "errors"

var (
	ErrExportNotFound = errors.New("repository: export not found")
	ErrFailedToInsert = errors.New("repository: failed to insert export")
	ErrFailedToUpdate = errors.New("repository: failed to update export")
)
