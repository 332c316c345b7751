// Package localdir implements ports.RemoteSource over a local checkout of the corpus.
package localdir

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RemoteSource = (*Source)(nil)

// Source serves listings and content from a directory tree.
type Source struct {
	root string
}

// New creates a Source rooted at dir.
func New(dir string) *Source {
	return &Source{root: filepath.Clean(dir)}
}

// ListDirectory lists path below the root. File hashes are xxhash64 digests of their content.
func (s *Source) ListDirectory(ctx context.Context, path string) ([]domain.RemoteFile, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(path))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", dir)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	files := make([]domain.RemoteFile, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			files = append(files, domain.RemoteFile{Name: entry.Name(), Kind: domain.KindDir})
			continue
		}

		hash, err := fileHash(full)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.RemoteFile{
			Name:        entry.Name(),
			Kind:        domain.KindFile,
			Hash:        hash,
			DownloadURL: full,
		})
	}
	return files, nil
}

// FetchContent reads a file previously returned by ListDirectory.
func (s *Source) FetchContent(_ context.Context, location string) (string, error) {
	clean := filepath.Clean(location)
	rel, err := filepath.Rel(s.root, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrSourceReadFailed, "path", location)
	}

	data, err := os.ReadFile(clean) //nolint:gosec // Confined to the source root above
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", clean)
	}
	return string(data), nil
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is produced by ReadDir below the root
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
