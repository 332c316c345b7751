package domain

import "go.trai.ch/zerr"

var (
	// ErrRemoteRequestFailed is returned when a request to the remote corpus cannot be completed.
	ErrRemoteRequestFailed = zerr.New("remote request failed")

	// ErrRemoteDecodeFailed is returned when a directory listing cannot be decoded.
	ErrRemoteDecodeFailed = zerr.New("failed to decode remote listing")

	// ErrSourceReadFailed is returned when the local corpus mirror cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read local source")

	// ErrMissingDownloadURL is returned when a listed file has no location to fetch it from.
	ErrMissingDownloadURL = zerr.New("listed file has no download location")

	// ErrParseFailed is returned when a license file's front matter is not valid YAML.
	ErrParseFailed = zerr.New("failed to parse license front matter")

	// ErrMissingIdentifier is returned when neither the front matter nor the filename yields an identifier.
	ErrMissingIdentifier = zerr.New("license has no usable identifier")

	// ErrDataDecodeFailed is returned when a data file cannot be parsed or decoded.
	ErrDataDecodeFailed = zerr.New("failed to decode data file")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when the cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read license cache")

	// ErrCacheUnmarshalFailed is returned when the cache file holds malformed content.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal license cache")

	// ErrCacheMarshalFailed is returned when the cache cannot be serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal license cache")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write license cache")

	// ErrLicenseNotFound is returned when a requested license is not in the cache.
	ErrLicenseNotFound = zerr.New("license not found in cache")

	// ErrMissingData is returned when an operation needs a data file that was never synchronized.
	ErrMissingData = zerr.New("required data file is not cached")

	// ErrInvalidPlaceholderKey is returned for a placeholder key that cannot be saved.
	ErrInvalidPlaceholderKey = zerr.New("invalid placeholder key")

	// ErrInvalidInput is returned when command input fails validation.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHomeDirUnavailable is returned when the default paths cannot be derived.
	ErrHomeDirUnavailable = zerr.New("could not determine home directory")

	// ErrOutputWriteFailed is returned when a filled license cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write license file")
)
