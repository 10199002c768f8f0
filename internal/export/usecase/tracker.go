package usecase

import (
	"errors"
	"sync"
	"time"

	"diagnosis-srv/internal/model"
)

var errInvalidTransition = errors.New("invalid export state transition")

// jobTracker holds live export jobs. The lock guards the map only.
type jobTracker struct {
	jobs map[string]*model.ExportJob
	mu   sync.RWMutex
}

func newJobTracker() *jobTracker {
	return &jobTracker{
		jobs: make(map[string]*model.ExportJob),
	}
}

func (t *jobTracker) add(job model.ExportJob) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.jobs[job.ID] = &job
}

// get returns a copy of the job.
func (t *jobTracker) get(id string) (model.ExportJob, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	job, ok := t.jobs[id]
	if !ok {
		return model.ExportJob{}, false
	}
	return *job, true
}

// transition moves a job to next, applying update to it first.
func (t *jobTracker) transition(id string, next model.ExportState, at time.Time, update func(*model.ExportJob)) (model.ExportJob, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return model.ExportJob{}, errInvalidTransition
	}
	if !job.State.CanTransitionTo(next) {
		return *job, errInvalidTransition
	}
	if update != nil {
		update(job)
	}
	job.State = next
	job.UpdatedAt = at
	return *job, nil
}

// close moves a ready job to closed and drops it. Missing jobs report ok=false.
func (t *jobTracker) close(id string, at time.Time) (model.ExportJob, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return model.ExportJob{}, false, nil
	}
	if !job.State.CanTransitionTo(model.ExportClosed) {
		return *job, true, errInvalidTransition
	}
	job.State = model.ExportClosed
	job.UpdatedAt = at
	delete(t.jobs, id)
	return *job, true, nil
}

// readySince returns ready jobs last updated before cutoff.
func (t *jobTracker) readySince(cutoff time.Time) []model.ExportJob {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []model.ExportJob
	for _, job := range t.jobs {
		if job.State == model.ExportReady && job.UpdatedAt.Before(cutoff) {
			out = append(out, *job)
		}
	}
	return out
}

// cleanup removes terminal jobs older than maxAge.
func (t *jobTracker) cleanup(now time.Time, maxAge time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, job := range t.jobs {
		if job.State.IsTerminal() && now.Sub(job.UpdatedAt) > maxAge {
			delete(t.jobs, id)
			removed++
		}
	}
	return removed
}

func (t *jobTracker) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.jobs)
}
