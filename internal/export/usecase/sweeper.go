package usecase

import (
	"context"
	"time"
)

func (uc *implUseCase) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(uc.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.sweep(ctx)
		}
	}
}

// sweep auto-closes expired ready jobs and drops old terminal snapshots.
func (uc *implUseCase) sweep(ctx context.Context) {
	now := uc.now()

	if uc.config.AutoCloseAfter > 0 {
		for _, job := range uc.tracker.readySince(now.Add(-uc.config.AutoCloseAfter)) {
			if err := uc.close(ctx, job); err != nil {
				uc.l.Warnf(ctx, "export.usecase.sweep: Failed to auto-close export %s: %v", job.ID, err)
				continue
			}
			uc.l.Infof(ctx, "export.usecase.sweep: Auto-closed export %s", job.ID)
		}
	}

	if removed := uc.tracker.cleanup(now, uc.config.JobRetention); removed > 0 {
		uc.l.Debugf(ctx, "export.usecase.sweep: Removed %d old export jobs", removed)
	}
}
