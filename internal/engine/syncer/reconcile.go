// Package syncer reconciles the local license cache against the remote corpus.
package syncer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/getlicense/internal/engine/parser"
	"go.trai.ch/getlicense/internal/engine/rules"
)

// FetchFunc downloads the content of a listed file.
type FetchFunc func(ctx context.Context, file domain.RemoteFile) (string, error)

// Reconciler builds the next cache maps from the previous ones and a listing.
// It performs no I/O of its own; all downloads go through Fetch.
type Reconciler struct {
	// Force refetches every listed file.
	Force bool
	Fetch FetchFunc
	// Logger receives skip warnings.
	Logger ports.Logger
	// Telemetry is optional.
	Telemetry ports.Telemetry
}

// DataFiles reconciles .yml data files, keyed "data:<name>".
// It returns the new map and the number of files fetched.
func (r *Reconciler) DataFiles(
	ctx context.Context,
	previous map[string]domain.DataFileEntry,
	listing []domain.RemoteFile,
) (map[string]domain.DataFileEntry, int) {
	next := make(map[string]domain.DataFileEntry)
	fetched := 0

	for _, file := range listing {
		if !file.IsFile() || !strings.HasSuffix(file.Name, domain.DataFileExt) {
			continue
		}
		key := domain.DataKey(file.Name)

		vctx, vertex := r.record(ctx, "data "+file.Name)
		if old, ok := previous[key]; ok && !r.Force && old.Sha == file.Hash {
			next[key] = old
			vertex.Cached()
			vertex.Complete(nil)
			continue
		}

		content, err := r.fetchData(vctx, file)
		vertex.Complete(err)
		if err != nil {
			r.Logger.Warn(fmt.Sprintf("skipping data file %s: %v", file.Name, err))
			continue
		}

		next[key] = domain.DataFileEntry{Sha: file.Hash, Content: content}
		fetched++
	}

	return next, fetched
}

func (r *Reconciler) fetchData(ctx context.Context, file domain.RemoteFile) (any, error) {
	raw, err := r.Fetch(ctx, file)
	if err != nil {
		return nil, err
	}
	return parser.ParseDataFile(file.Name, raw)
}

// Licenses reconciles .txt license files. Cached entries are matched by
// their stored filename, so a changed identifier does not orphan an entry.
// table may be nil.
func (r *Reconciler) Licenses(
	ctx context.Context,
	previous map[string]domain.LicenseEntry,
	listing []domain.RemoteFile,
	table *domain.RuleTable,
) (map[string]domain.LicenseEntry, int) {
	byFilename := make(map[string]string, len(previous))
	for key, entry := range previous {
		byFilename[entry.Filename] = key
	}

	next := make(map[string]domain.LicenseEntry)
	fetched := 0

	for _, file := range listing {
		if !file.IsFile() || !strings.HasSuffix(file.Name, domain.LicenseFileExt) {
			continue
		}

		vctx, vertex := r.record(ctx, "license "+file.Name)
		if key, ok := byFilename[file.Name]; ok && !r.Force && previous[key].Sha == file.Hash {
			next[key] = previous[key]
			vertex.Cached()
			vertex.Complete(nil)
			continue
		}

		entry, err := r.fetchLicense(vctx, file, table)
		vertex.Complete(err)
		if err != nil {
			r.Logger.Warn(fmt.Sprintf("skipping license %s: %v", file.Name, err))
			continue
		}

		key := strings.ToLower(entry.SpdxID)
		if _, dup := next[key]; dup {
			r.Logger.Warn(fmt.Sprintf("license %s redefines identifier %s", file.Name, entry.SpdxID))
		}
		next[key] = *entry
		fetched++
	}

	return next, fetched
}

func (r *Reconciler) fetchLicense(
	ctx context.Context,
	file domain.RemoteFile,
	table *domain.RuleTable,
) (*domain.LicenseEntry, error) {
	raw, err := r.Fetch(ctx, file)
	if err != nil {
		return nil, err
	}

	lic, err := parser.ParseLicenseFile(file.Name, raw)
	if err != nil {
		return nil, err
	}

	return &domain.LicenseEntry{
		SpdxID:             lic.ID,
		Title:              lic.Meta.Title,
		Nickname:           lic.Meta.Nickname,
		Description:        lic.Meta.Description,
		Filename:           file.Name,
		Sha:                file.Hash,
		Permissions:        lic.Meta.Permissions,
		Conditions:         lic.Meta.Conditions,
		Limitations:        lic.Meta.Limitations,
		FileContentCached:  lic.Body,
		PlaceholdersInBody: parser.ExtractPlaceholders(lic.Body),
		InfoComponents:     rules.BuildInfoComponents(&lic.Meta, table),
	}, nil
}

func (r *Reconciler) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if r.Telemetry == nil {
		return ctx, noopVertex{}
	}
	return r.Telemetry.Record(ctx, name)
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Cached()           {}
func (noopVertex) Complete(error)    {}
