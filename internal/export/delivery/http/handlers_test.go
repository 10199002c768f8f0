package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/export/mocks"
	"diagnosis-srv/internal/middleware"
	"diagnosis-srv/internal/model"
	"diagnosis-srv/pkg/log"
	"diagnosis-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const jobID = "00000000-0000-0000-0000-000000000042"

type staticManager struct{}

func (staticManager) Verify(token string) (scope.Payload, error) {
	if token == "doctor" {
		return scope.Payload{UserID: "1", Username: "dr.grey", Role: model.RoleDoctor, Token: token}, nil
	}
	return scope.Payload{}, errors.New("invalid")
}

var doctorScope = model.Scope{UserID: "1", Username: "dr.grey", Role: model.RoleDoctor, AccessToken: "doctor"}

func setup(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewUseCase(t)
	l := log.NewNop()

	r := gin.New()
	r.Use(middleware.Recovery(l, nil))
	New(l, uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(l, staticManager{}, ""))
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer doctor")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestExport(t *testing.T) {
	r, uc := setup(t)
	job := model.ExportJob{ID: jobID, ReportID: 7, State: model.ExportCompiling, ArtifactName: "report_7.pdf", CreatedAt: time.Now()}

	uc.On("Export", mock.Anything, doctorScope, export.ExportInput{ReportID: 7, NotesOverride: "draft"}).
		Return(export.ExportOutput{Job: job}, nil).Once()
	w := do(r, http.MethodPost, "/api/v1/reports/7/exports", `{"doctor_notes":"draft"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, jobID, data["id"])
	assert.Equal(t, "compiling", data["state"])
	assert.Equal(t, "report_7.pdf", data["file_name"])

	uc.On("Export", mock.Anything, doctorScope, export.ExportInput{ReportID: 8}).
		Return(export.ExportOutput{Job: job}, nil).Once()
	w = do(r, http.MethodPost, "/api/v1/reports/8/exports", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestExport_BadInput(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/api/v1/reports/x/exports", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/reports/7/exports", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJob(t *testing.T) {
	r, uc := setup(t)
	uc.On("GetJob", mock.Anything, doctorScope, export.GetJobInput{JobID: jobID}).
		Return(export.JobOutput{Job: model.ExportJob{ID: jobID, State: model.ExportFailed, Error: export.GenericFailureMessage}}, nil).Once()

	w := do(r, http.MethodGet, "/api/v1/exports/"+jobID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "failed", data["state"])
	assert.Equal(t, "Failed to generate report", data["error"])

	uc.On("GetJob", mock.Anything, doctorScope, export.GetJobInput{JobID: "missing"}).
		Return(export.JobOutput{}, export.ErrInvalidJobID).Once()
	w = do(r, http.MethodGet, "/api/v1/exports/missing", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload(t *testing.T) {
	r, uc := setup(t)
	uc.On("Download", mock.Anything, doctorScope, export.DownloadInput{JobID: jobID}).
		Return(export.DownloadOutput{URL: "https://minio.local/x", FileName: "report_7.pdf", ExpiresAt: time.Now()}, nil).Once()

	w := do(r, http.MethodGet, "/api/v1/exports/"+jobID+"/download", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "https://minio.local/x", data["url"])

	uc.On("Download", mock.Anything, doctorScope, export.DownloadInput{JobID: "00000000-0000-0000-0000-000000000043"}).
		Return(export.DownloadOutput{}, export.ErrNotReady).Once()
	w = do(r, http.MethodGet, "/api/v1/exports/00000000-0000-0000-0000-000000000043/download", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDismiss(t *testing.T) {
	r, uc := setup(t)
	uc.On("Dismiss", mock.Anything, doctorScope, export.DismissInput{JobID: jobID}).Return(nil).Once()
	w := do(r, http.MethodDelete, "/api/v1/exports/"+jobID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	uc.On("Dismiss", mock.Anything, doctorScope, export.DismissInput{JobID: jobID}).Return(export.ErrJobNotFound).Once()
	w = do(r, http.MethodDelete, "/api/v1/exports/"+jobID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
