package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/visualization"
	pkghttp "diagnosis-srv/pkg/http"
	"diagnosis-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newTestUseCase(baseURL string, maxBytes int64) visualization.UseCase {
	client := NewFetchClient(pkghttp.DefaultTimeout, maxBytes)
	return New(client, log.NewNop(), visualization.Config{BaseURL: baseURL, MaxImageBytes: maxBytes})
}

func TestFetchAndEncode(t *testing.T) {
	var calls int32
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		switch r.URL.Path {
		case "/gradcam/ok.png":
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write(pngHeader)
		case "/gradcam/text.png":
			_, _ = w.Write([]byte("definitely not an image"))
		case "/gradcam/empty.png":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	uc := newTestUseCase(srv.URL+"/", 0)
	ctx := context.Background()
	sc := model.Scope{AccessToken: "tok"}

	t.Run("absent path makes no request", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		img := uc.FetchAndEncode(ctx, sc, "")
		assert.Equal(t, model.ImageAbsent, img.Status)
		img = uc.FetchAndEncode(ctx, sc, "   ")
		assert.Equal(t, model.ImageAbsent, img.Status)
		assert.Equal(t, before, atomic.LoadInt32(&calls))
	})

	t.Run("encoded", func(t *testing.T) {
		img := uc.FetchAndEncode(ctx, sc, "/gradcam/ok.png")
		require.Equal(t, model.ImageEncoded, img.Status)
		assert.Equal(t, "image/png", img.MIMEType)
		raw, err := img.Decode()
		require.NoError(t, err)
		assert.Equal(t, pngHeader, raw)
		assert.Equal(t, "Bearer tok", gotAuth)
	})

	t.Run("not found", func(t *testing.T) {
		img := uc.FetchAndEncode(ctx, sc, "gradcam/missing.png")
		assert.Equal(t, model.ImageUnavailable, img.Status)
	})

	t.Run("non image body", func(t *testing.T) {
		img := uc.FetchAndEncode(ctx, sc, "gradcam/text.png")
		assert.Equal(t, model.ImageUnavailable, img.Status)
	})

	t.Run("empty body", func(t *testing.T) {
		img := uc.FetchAndEncode(ctx, sc, "gradcam/empty.png")
		assert.Equal(t, model.ImageUnavailable, img.Status)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		img := uc.FetchAndEncode(cctx, sc, "gradcam/ok.png")
		assert.Equal(t, model.ImageUnavailable, img.Status)
	})
}

func TestFetchAndEncode_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	uc := newTestUseCase(srv.URL, 8)
	img := uc.FetchAndEncode(context.Background(), model.Scope{}, "big.png")
	assert.Equal(t, model.ImageUnavailable, img.Status)
}

func TestFetchAndEncode_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	uc := newTestUseCase(url, 0)
	img := uc.FetchAndEncode(context.Background(), model.Scope{}, "a.png")
	assert.Equal(t, model.ImageUnavailable, img.Status)
}

func TestFetchAndEncode_ServerErrorIsSingleRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	uc := newTestUseCase(srv.URL, 0)
	img := uc.FetchAndEncode(context.Background(), model.Scope{}, "gradcam/busy.png")
	assert.Equal(t, model.ImageUnavailable, img.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
