package ports

import "go.trai.ch/getlicense/internal/core/domain"

// CacheStore persists the license cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load reads the cache at path. A missing or empty file yields an empty cache.
	Load(path string) (*domain.Cache, error)

	// Save writes the cache to path, creating parent directories.
	Save(path string, cache *domain.Cache) error
}
