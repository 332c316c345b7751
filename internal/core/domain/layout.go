package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// AppDirName is the per-user directory holding the cache and settings.
	AppDirName = ".getlicense"

	// CacheFileName is the default name of the persisted cache.
	CacheFileName = "license_cache.json"

	// ConfigFileName is the default name of the settings file.
	ConfigFileName = "config.yaml"

	// DefaultOutputFile is where a filled license is written unless told otherwise.
	DefaultOutputFile = "LICENSE"

	// LicensesDir is the corpus directory holding license templates.
	LicensesDir = "_licenses"

	// DataDir is the corpus directory holding metadata tables.
	DataDir = "_data"

	// LicenseFileExt is the extension of license template files.
	LicenseFileExt = ".txt"

	// DataFileExt is the extension of metadata files.
	DataFileExt = ".yml"

	// DataKeyPrefix namespaces data files inside the cache.
	DataKeyPrefix = "data:"

	// RulesDataKey is the cache key of the rule table.
	RulesDataKey = DataKeyPrefix + "rules.yml"

	// FieldsDataKey is the cache key of the field table.
	FieldsDataKey = DataKeyPrefix + "fields.yml"

	// TokenEnvVar names the environment variable carrying the API token.
	TokenEnvVar = "GITHUB_TOKEN"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DataKey returns the cache key for a data file name.
func DataKey(name string) string {
	return DataKeyPrefix + name
}

// DefaultAppDir returns $HOME/.getlicense.
func DefaultAppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrHomeDirUnavailable.Error())
	}
	return filepath.Join(home, AppDirName), nil
}

// DefaultCachePath returns the default location of the persisted cache.
func DefaultCachePath() (string, error) {
	dir, err := DefaultAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CacheFileName), nil
}

// DefaultConfigPath returns the default location of the settings file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}
