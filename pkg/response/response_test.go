package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "diagnosis-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestError(t *testing.T) {
	t.Run("http error keeps its status", func(t *testing.T) {
		c, w := newTestContext()
		Error(c, pkgErrors.NewHTTPError(404, "Report not found"), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Report not found", decode(t, w).Message)
	})

	t.Run("validation errors are 400", func(t *testing.T) {
		c, w := newTestContext()
		Error(c, pkgErrors.ValidationError{Field: "report_id", Message: "must be a positive integer"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotNil(t, decode(t, w).Errors)
	})

	t.Run("unknown error is 500", func(t *testing.T) {
		c, w := newTestContext()
		Error(c, errors.New("boom"), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
