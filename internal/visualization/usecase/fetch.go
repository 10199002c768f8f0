package usecase

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"diagnosis-srv/internal/model"
)

// FetchAndEncode downloads the image at resourcePath and returns it base64 encoded.
func (uc *implUseCase) FetchAndEncode(ctx context.Context, sc model.Scope, resourcePath string) model.Image {
	path := strings.TrimSpace(resourcePath)
	if path == "" {
		return model.AbsentImage()
	}

	url := uc.resourceURL(path)

	var headers map[string]string
	if sc.AccessToken != "" {
		headers = map[string]string{"Authorization": "Bearer " + sc.AccessToken}
	}

	body, statusCode, err := uc.client.Get(ctx, url, headers)
	if err != nil {
		uc.l.Warnf(ctx, "visualization.usecase.FetchAndEncode: Failed to fetch %s: %v", url, err)
		return model.UnavailableImage()
	}
	if statusCode < 200 || statusCode > 299 {
		uc.l.Warnf(ctx, "visualization.usecase.FetchAndEncode: Unexpected status %d for %s", statusCode, url)
		return model.UnavailableImage()
	}
	if len(body) == 0 {
		uc.l.Warnf(ctx, "visualization.usecase.FetchAndEncode: Empty body for %s", url)
		return model.UnavailableImage()
	}
	if int64(len(body)) > uc.config.MaxImageBytes {
		uc.l.Warnf(ctx, "visualization.usecase.FetchAndEncode: Image %s exceeds %d bytes", url, uc.config.MaxImageBytes)
		return model.UnavailableImage()
	}

	mt := mimetype.Detect(body)
	if !strings.HasPrefix(mt.String(), "image/") {
		uc.l.Warnf(ctx, "visualization.usecase.FetchAndEncode: %s is not an image (%s)", url, mt.String())
		return model.UnavailableImage()
	}

	return model.EncodedImage(mt.String(), body)
}

func (uc *implUseCase) resourceURL(path string) string {
	return uc.config.BaseURL + "/" + strings.TrimLeft(path, "/")
}
