// Package app implements the application layer for getlicense.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/getlicense/internal/adapters/github"   //nolint:depguard // Wired in app layer
	"go.trai.ch/getlicense/internal/adapters/localdir" //nolint:depguard // Wired in app layer
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/getlicense/internal/engine/syncer"
	"go.trai.ch/zerr"
)

// SourceFactory builds the remote source for a run.
type SourceFactory func(settings domain.SourceSettings, log ports.Logger) ports.RemoteSource

// DefaultSourceFactory reads a local checkout when one is configured and the
// GitHub API otherwise.
func DefaultSourceFactory(settings domain.SourceSettings, log ports.Logger) ports.RemoteSource {
	if settings.Dir != "" {
		return localdir.New(settings.Dir)
	}
	return github.NewClient(settings, log)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.CacheStore
	logger       ports.Logger
	telemetry    ports.Telemetry
	newSource    SourceFactory
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.CacheStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       log,
		telemetry:    telemetry,
		newSource:    DefaultSourceFactory,
		now:          time.Now,
	}
}

// WithSourceFactory replaces the source factory.
// This is primarily used for testing to avoid the network.
func (a *App) WithSourceFactory(f SourceFactory) *App {
	a.newSource = f
	return a
}

// WithClock replaces the clock used for the default year.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Options holds the global command-line options of a run.
type Options struct {
	ConfigPath string
	CacheFile  string
	SourceDir  string
	Refresh    bool
	Verbose    bool
}

type verboser interface {
	SetVerbose(enable bool)
}

// session loads settings, synchronizes the cache, runs action and persists
// the cache when the run context was marked modified. A cache that was
// updated by the sync is saved even when action fails.
func (a *App) session(
	ctx context.Context,
	opts Options,
	action func(cache *domain.Cache, rc *domain.RunContext) error,
) error {
	if v, ok := a.logger.(verboser); ok {
		v.SetVerbose(opts.Verbose)
	}

	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.CacheFile != "" {
		settings.CacheFile = opts.CacheFile
	}
	if opts.SourceDir != "" {
		settings.Source.Dir = opts.SourceDir
	}

	cachePath := settings.CacheFile
	if cachePath == "" {
		cachePath, err = domain.DefaultCachePath()
		if err != nil {
			return err
		}
	}
	a.logger.Debug(fmt.Sprintf("using cache %s", cachePath))

	rc := &domain.RunContext{ForceRefresh: opts.Refresh, Verbose: opts.Verbose}
	sync := syncer.New(a.newSource(settings.Source, a.logger), a.store, a.logger, a.telemetry)

	cache, err := sync.Sync(ctx, rc, cachePath)
	if err != nil {
		return err
	}

	actionErr := action(cache, rc)

	if rc.Modified() {
		if err := a.store.Save(cachePath, cache); err != nil {
			return err
		}
		a.logger.Debug("license cache saved")
	}

	return actionErr
}
