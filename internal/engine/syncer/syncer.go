package syncer

import (
	"context"
	"fmt"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/getlicense/internal/engine/rules"
	"go.trai.ch/zerr"
)

// Synchronizer brings the persisted cache up to date with a RemoteSource.
type Synchronizer struct {
	source    ports.RemoteSource
	store     ports.CacheStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Synchronizer. telemetry may be nil.
func New(
	source ports.RemoteSource,
	store ports.CacheStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Synchronizer {
	return &Synchronizer{
		source:    source,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Sync loads the cache at cachePath, reconciles data files and then licenses,
// and returns the merged cache. Saved placeholder values are carried over
// from disk untouched. The cache is not written; rc is marked modified when
// anything was fetched.
func (s *Synchronizer) Sync(ctx context.Context, rc *domain.RunContext, cachePath string) (*domain.Cache, error) {
	previous, err := s.store.Load(cachePath)
	if err != nil {
		if !rc.ForceRefresh {
			return nil, err
		}
		s.logger.Warn(fmt.Sprintf("ignoring unreadable cache during refresh: %v", err))
		previous = domain.NewCache()
	}

	if rc.ForceRefresh {
		s.logger.Info("refreshing all license data")
	}

	r := &Reconciler{
		Force:     rc.ForceRefresh,
		Fetch:     s.fetch,
		Logger:    s.logger,
		Telemetry: s.telemetry,
	}

	dataFiles, dataFetched := s.syncDataFiles(ctx, r, previous)

	table, ok := rules.FromDataFiles(dataFiles)
	if !ok {
		s.logger.Debug("rule table unavailable, rule descriptions will use fallbacks")
	}

	licenses, licensesFetched := s.syncLicenses(ctx, r, previous, table)

	next := &domain.Cache{
		Licenses:         licenses,
		DataFiles:        dataFiles,
		UserPlaceholders: previous.ClonePlaceholders(),
	}

	if fetched := dataFetched + licensesFetched; fetched > 0 {
		rc.MarkModified()
		s.logger.Info(fmt.Sprintf("fetched %d file(s)", fetched))
	} else {
		s.logger.Debug("license cache is up to date")
	}

	return next, nil
}

func (s *Synchronizer) syncDataFiles(
	ctx context.Context,
	r *Reconciler,
	previous *domain.Cache,
) (map[string]domain.DataFileEntry, int) {
	listing, err := s.source.ListDirectory(ctx, domain.DataDir)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("could not list %s, keeping cached data files: %v", domain.DataDir, err))
		return cloneMap(previous.DataFiles), 0
	}
	return r.DataFiles(ctx, previous.DataFiles, listing)
}

func (s *Synchronizer) syncLicenses(
	ctx context.Context,
	r *Reconciler,
	previous *domain.Cache,
	table *domain.RuleTable,
) (map[string]domain.LicenseEntry, int) {
	listing, err := s.source.ListDirectory(ctx, domain.LicensesDir)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("could not list %s, keeping cached licenses: %v", domain.LicensesDir, err))
		return cloneMap(previous.Licenses), 0
	}
	return r.Licenses(ctx, previous.Licenses, listing, table)
}

func (s *Synchronizer) fetch(ctx context.Context, file domain.RemoteFile) (string, error) {
	if file.DownloadURL == "" {
		return "", zerr.With(domain.ErrMissingDownloadURL, "file", file.Name)
	}
	return s.source.FetchContent(ctx, file.DownloadURL)
}

func cloneMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
