package postgre

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	r := &implRepository{l: log.NewNop()}
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	rpt := r.buildReport(context.Background(), reportRow{
		ID:               7,
		PatientUsername:  sql.NullString{String: "alice", Valid: true},
		Filename:         sql.NullString{String: "scan.png", Valid: true},
		CreatedAt:        created,
		CNNResults:       sql.NullString{String: "Glioma", Valid: true},
		CNNConfidence:    []byte(`{"Glioma":92,"Meningioma":5}`),
		ResNetResults:    sql.NullString{String: "Pituitary", Valid: true},
		ResNetConfidence: []byte(`not json`),
		GradcamCNNPath:   sql.NullString{String: "gradcam/7_cnn.png", Valid: true},
	})

	assert.Equal(t, int64(7), rpt.ID)
	assert.Equal(t, "alice", rpt.PatientUsername)
	assert.Equal(t, created, rpt.CreatedAt)
	assert.Equal(t, model.ConfidenceMap{"Glioma": 92, "Meningioma": 5}, rpt.ModelA.Confidence)
	assert.Equal(t, "Pituitary", rpt.ModelB.PredictedCategory)
	assert.Empty(t, rpt.ModelB.Confidence)
	assert.NotNil(t, rpt.ModelB.Confidence)
	assert.Equal(t, "gradcam/7_cnn.png", rpt.VisualizationA)
	assert.Empty(t, rpt.VisualizationB)
	assert.Empty(t, rpt.ClinicianNotes)
}
