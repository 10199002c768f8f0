package visualization

import (
	"context"

	"diagnosis-srv/internal/model"
)

// UseCase retrieves saliency images referenced by reports.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// FetchAndEncode never fails: problems are reported through the returned Image status.
	FetchAndEncode(ctx context.Context, sc model.Scope, resourcePath string) model.Image
}
