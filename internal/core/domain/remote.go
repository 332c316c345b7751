package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// FileKind distinguishes files from directories in a listing.
type FileKind string

const (
	// KindFile is a regular file.
	KindFile FileKind = "file"
	// KindDir is a directory.
	KindDir FileKind = "dir"
)

// RemoteFile is one row of a remote directory listing.
type RemoteFile struct {
	Name        string
	Kind        FileKind
	Hash        string
	DownloadURL string
}

// IsFile reports whether the row is a regular file.
func (f RemoteFile) IsFile() bool {
	return f.Kind == KindFile
}

// RemoteError is returned when the remote answers with a non-2xx status.
type RemoteError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("remote returned status %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("remote returned status %d for %s: %s", e.StatusCode, e.URL, body)
}

// RateLimited reports whether the response is GitHub's rate-limit rejection.
func (e *RemoteError) RateLimited() bool {
	return e.StatusCode == http.StatusForbidden &&
		strings.Contains(strings.ToLower(e.Body), "rate limit exceeded")
}
