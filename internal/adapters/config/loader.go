// Package config loads getlicense settings from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup. Used by tests.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// Load reads the settings at path. With an empty path the default location
// is used and a missing file yields the defaults; an explicit path must exist.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		def, err := domain.DefaultConfigPath()
		if err != nil {
			l.logger.Debug("no home directory, using default settings")
			return l.finish(domain.DefaultSettings()), nil
		}
		path = def
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			l.logger.Debug("no config file at " + path + ", using defaults")
			return l.finish(domain.DefaultSettings()), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file settingsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings := &domain.Settings{
		CacheFile: expandHome(file.CacheFile),
		Source: domain.SourceSettings{
			APIBase: file.Source.APIBase,
			Owner:   file.Source.Owner,
			Repo:    file.Source.Repo,
			Branch:  file.Source.Branch,
			Dir:     expandHome(file.Source.Dir),
		},
	}
	settings.ApplyDefaults()

	return l.finish(settings), nil
}

func (l *Loader) finish(s *domain.Settings) *domain.Settings {
	s.Source.Token = strings.TrimSpace(l.getenv(domain.TokenEnvVar))
	return s
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
