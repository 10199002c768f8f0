package usecase

import (
	"context"
	"errors"

	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/export/repository"
	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/minio"

	"github.com/google/uuid"
)

func jobFromRecord(rec model.ExportRecord) model.ExportJob {
	return model.ExportJob{
		ID:           rec.ID,
		ReportID:     rec.ReportID,
		UserID:       rec.UserID,
		State:        rec.State(),
		Error:        rec.ErrorMessage,
		ArtifactName: rec.FileName,
		ObjectName:   rec.FileURL,
		Size:         rec.FileSizeBytes,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// lookup returns the live job or its persisted record. Jobs of other users are not found.
func (uc *implUseCase) lookup(ctx context.Context, sc model.Scope, jobID string) (model.ExportJob, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return model.ExportJob{}, export.ErrInvalidJobID
	}

	job, ok := uc.tracker.get(jobID)
	if !ok {
		rec, err := uc.repo.GetExportByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrExportNotFound) {
				return model.ExportJob{}, export.ErrJobNotFound
			}
			uc.l.Errorf(ctx, "export.usecase.lookup: Failed to get export %s: %v", jobID, err)
			return model.ExportJob{}, export.ErrRecordStoreFailure
		}
		job = jobFromRecord(rec)
	}

	if job.UserID != sc.UserID {
		return model.ExportJob{}, export.ErrJobNotFound
	}
	return job, nil
}

func (uc *implUseCase) GetJob(ctx context.Context, sc model.Scope, input export.GetJobInput) (export.JobOutput, error) {
	job, err := uc.lookup(ctx, sc, input.JobID)
	if err != nil {
		return export.JobOutput{}, err
	}
	return export.JobOutput{Job: job}, nil
}

// Download issues a presigned URL and closes a ready job.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input export.DownloadInput) (export.DownloadOutput, error) {
	job, err := uc.lookup(ctx, sc, input.JobID)
	if err != nil {
		return export.DownloadOutput{}, err
	}
	if job.State != model.ExportReady && job.State != model.ExportClosed {
		return export.DownloadOutput{}, export.ErrNotReady
	}
	if job.ObjectName == "" {
		return export.DownloadOutput{}, export.ErrNotReady
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName:   uc.config.Bucket,
		ObjectName:   job.ObjectName,
		Method:       minio.MethodGET,
		Expiry:       uc.config.DownloadExpiry,
		DownloadName: job.ArtifactName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: Failed to presign %s: %v", job.ObjectName, err)
		return export.DownloadOutput{}, export.ErrRecordStoreFailure
	}

	if job.State == model.ExportReady {
		if err := uc.close(ctx, job); err != nil {
			uc.l.Warnf(ctx, "export.usecase.Download: Failed to close export %s: %v", job.ID, err)
		}
	}

	return export.DownloadOutput{
		URL:       url.URL,
		FileName:  job.ArtifactName,
		ExpiresAt: url.ExpiresAt,
	}, nil
}

// Dismiss closes a ready job. Dismissing a closed job is a no-op.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, input export.DismissInput) error {
	job, err := uc.lookup(ctx, sc, input.JobID)
	if err != nil {
		return err
	}

	switch job.State {
	case model.ExportClosed:
		return nil
	case model.ExportReady:
		return uc.close(ctx, job)
	default:
		return export.ErrNotReady
	}
}

// close performs ready -> closed in the tracker and the export history.
func (uc *implUseCase) close(ctx context.Context, job model.ExportJob) error {
	if _, _, err := uc.tracker.close(job.ID, uc.now()); err != nil {
		return export.ErrNotReady
	}

	if err := uc.repo.UpdateClosed(ctx, job.ID); err != nil {
		if errors.Is(err, repository.ErrExportNotFound) {
			// Already closed by a concurrent caller
			return nil
		}
		uc.l.Errorf(ctx, "export.usecase.close: Failed to close export %s: %v", job.ID, err)
		return export.ErrRecordStoreFailure
	}
	return nil
}
