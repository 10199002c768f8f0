package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"

	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/export/repository"
	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report"
	"diagnosis-srv/pkg/minio"
	"diagnosis-srv/pkg/pdf"
)

func objectName(jobID, artifactName string) string {
	return path.Join(export.ObjectPrefix, jobID, artifactName)
}

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input export.ExportInput) (export.ExportOutput, error) {
	if input.ReportID <= 0 {
		return export.ExportOutput{}, export.ErrInvalidReportID
	}

	now := uc.now()
	job := model.ExportJob{
		ID:           uc.newID(),
		ReportID:     input.ReportID,
		UserID:       sc.UserID,
		State:        model.ExportIdle,
		ArtifactName: pdf.ArtifactName(input.ReportID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	job.ObjectName = objectName(job.ID, job.ArtifactName)

	if _, err := uc.repo.CreateExport(ctx, repository.CreateExportOptions{
		ID:       job.ID,
		ReportID: job.ReportID,
		UserID:   job.UserID,
		FileName: job.ArtifactName,
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.Export: Failed to create export record: %v", err)
		return export.ExportOutput{}, export.ErrRecordStoreFailure
	}

	uc.tracker.add(job)
	job, err := uc.tracker.transition(job.ID, model.ExportCompiling, uc.now(), nil)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Export: Failed to start job %s: %v", job.ID, err)
		return export.ExportOutput{}, err
	}

	go uc.exportInBackground(sc, job, input.NotesOverride)

	uc.l.Infof(ctx, "export.usecase.Export: Started export %s of report %d", job.ID, job.ReportID)
	return export.ExportOutput{Job: job}, nil
}

// exportInBackground runs the export pipeline of a compiling job.
func (uc *implUseCase) exportInBackground(sc model.Scope, job model.ExportJob, notesOverride string) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.config.Timeout)
	defer cancel()

	start := uc.now()

	defer func() {
		if r := recover(); r != nil {
			uc.fail(ctx, job, fmt.Errorf("panic: %v", r))
		}
	}()

	info, err := uc.generate(ctx, sc, job, notesOverride)
	if err != nil {
		uc.fail(ctx, job, err)
		return
	}

	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ID:               job.ID,
		FileURL:          job.ObjectName,
		FileSizeBytes:    info.Size,
		GenerationTimeMs: uc.now().Sub(start).Milliseconds(),
	}); err != nil {
		uc.fail(ctx, job, fmt.Errorf("mark completed: %w", err))
		return
	}

	ready, err := uc.tracker.transition(job.ID, model.ExportReady, uc.now(), func(j *model.ExportJob) {
		j.Size = info.Size
	})
	if err != nil {
		uc.l.Warnf(ctx, "export.usecase.exportInBackground: Job %s not marked ready: %v", job.ID, err)
		return
	}

	uc.l.Infof(ctx, "export.usecase.exportInBackground: Export %s of report %d ready (%d bytes)", job.ID, job.ReportID, info.Size)
	uc.publish(ctx, export.EventReady, ready)
}

// generate loads, compiles, renders and stores the report of job.
func (uc *implUseCase) generate(ctx context.Context, sc model.Scope, job model.ExportJob, notesOverride string) (*minio.FileInfo, error) {
	o, err := uc.reportUC.GetReport(ctx, sc, report.GetReportInput{ReportID: job.ReportID})
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	doc, err := uc.reportUC.Compile(ctx, sc, report.CompileInput{
		Report:        o.Report,
		NotesOverride: notesOverride,
	})
	if err != nil {
		return nil, fmt.Errorf("compile report: %w", err)
	}

	artifact, err := uc.producer.Produce(doc)
	if err != nil {
		return nil, fmt.Errorf("produce artifact: %w", err)
	}
	if artifact.Substitutions > 0 {
		uc.l.Warnf(ctx, "export.usecase.generate: Export %s replaced %d characters the PDF font cannot render", job.ID, artifact.Substitutions)
	}

	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.Bucket,
		ObjectName:  job.ObjectName,
		Reader:      bytes.NewReader(artifact.Data),
		Size:        int64(len(artifact.Data)),
		ContentType: artifact.ContentType,
		Metadata: map[string]string{
			"export-id": job.ID,
			"report-id": strconv.FormatInt(job.ReportID, 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload artifact: %w", err)
	}
	return info, nil
}

// fail marks job failed with the generic message. The cause is only logged.
func (uc *implUseCase) fail(ctx context.Context, job model.ExportJob, cause error) {
	ctx = context.WithoutCancel(ctx)
	uc.l.Errorf(ctx, "export.usecase.exportInBackground: Export %s of report %d failed: %v", job.ID, job.ReportID, cause)

	failed, err := uc.tracker.transition(job.ID, model.ExportFailed, uc.now(), func(j *model.ExportJob) {
		j.Error = export.GenericFailureMessage
	})
	if err != nil {
		// The job already left compiling, its outcome stands
		uc.l.Warnf(ctx, "export.usecase.exportInBackground: Job %s not marked failed: %v", job.ID, err)
		return
	}

	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ID:           job.ID,
		ErrorMessage: export.GenericFailureMessage,
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.exportInBackground: Failed to mark export %s failed: %v", job.ID, err)
	}

	uc.publish(ctx, export.EventFailed, failed)
}

func (uc *implUseCase) publish(ctx context.Context, event string, job model.ExportJob) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishExportEvent(ctx, export.ExportEvent{
		Event:      event,
		JobID:      job.ID,
		ReportID:   job.ReportID,
		UserID:     job.UserID,
		State:      job.State,
		ObjectName: job.ObjectName,
		Size:       job.Size,
		Error:      job.Error,
		OccurredAt: job.UpdatedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "export.usecase.publish: Failed to publish %s for export %s: %v", event, job.ID, err)
	}
}
