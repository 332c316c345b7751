package ports

import (
	"context"

	"go.trai.ch/getlicense/internal/core/domain"
)

// RemoteSource lists and downloads files of the license corpus.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type RemoteSource interface {
	// ListDirectory returns the rows of the corpus directory at path.
	ListDirectory(ctx context.Context, path string) ([]domain.RemoteFile, error)

	// FetchContent downloads the raw text found at location.
	FetchContent(ctx context.Context, location string) (string, error)
}
