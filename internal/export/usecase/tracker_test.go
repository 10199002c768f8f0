package usecase

import (
	"testing"
	"time"

	"diagnosis-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobTrackerTransitions(t *testing.T) {
	tr := newJobTracker()
	now := time.Now()
	tr.add(model.ExportJob{ID: "a", State: model.ExportIdle, UpdatedAt: now})

	_, err := tr.transition("a", model.ExportReady, now, nil)
	assert.ErrorIs(t, err, errInvalidTransition)

	job, err := tr.transition("a", model.ExportCompiling, now, nil)
	require.NoError(t, err)
	assert.Equal(t, model.ExportCompiling, job.State)

	job, err = tr.transition("a", model.ExportReady, now, func(j *model.ExportJob) { j.Size = 10 })
	require.NoError(t, err)
	assert.Equal(t, int64(10), job.Size)

	_, err = tr.transition("missing", model.ExportCompiling, now, nil)
	assert.ErrorIs(t, err, errInvalidTransition)
}

func TestJobTrackerGetReturnsCopy(t *testing.T) {
	tr := newJobTracker()
	tr.add(model.ExportJob{ID: "a", State: model.ExportCompiling})

	job, ok := tr.get("a")
	require.True(t, ok)
	job.State = model.ExportFailed

	again, _ := tr.get("a")
	assert.Equal(t, model.ExportCompiling, again.State)
}

func TestJobTrackerClose(t *testing.T) {
	tr := newJobTracker()
	now := time.Now()
	tr.add(model.ExportJob{ID: "a", State: model.ExportReady})
	tr.add(model.ExportJob{ID: "b", State: model.ExportCompiling})

	job, ok, err := tr.close("a", now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.ExportClosed, job.State)
	assert.Equal(t, 1, tr.count())

	_, ok, err = tr.close("a", now)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tr.close("b", now)
	assert.True(t, ok)
	assert.ErrorIs(t, err, errInvalidTransition)
}
