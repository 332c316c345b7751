// Package cachefile persists the license cache as a JSON document.
package cachefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache at path. A missing or blank file yields an empty cache.
// Comments and trailing commas left by hand edits are tolerated.
func (s *Store) Load(path string) (*domain.Cache, error) {
	//nolint:gosec // Path comes from the user's settings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCache(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewCache(), nil
	}

	var cache domain.Cache
	if err := json.Unmarshal(jsonc.ToJSON(data), &cache); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error()), "path", path)
	}

	return &cache, nil
}

// Save writes the cache to path with two-space indentation.
func (s *Store) Save(path string, cache *domain.Cache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	return nil
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".license-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
