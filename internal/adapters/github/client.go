// Package github implements ports.RemoteSource against the GitHub contents API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/getlicense/internal/build"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	acceptHeader      = "application/vnd.github.v3+json"
	httpClientTimeout = 30 * time.Second
)

// Client lists and downloads files of a repository branch.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
	apiBase    string
	owner      string
	repo       string
	branch     string
	token      string
}

// NewClient creates a Client for the repository described by settings.
func NewClient(settings domain.SourceSettings, logger ports.Logger) *Client {
	return NewClientWithHTTP(settings, logger, &http.Client{Timeout: httpClientTimeout})
}

// NewClientWithHTTP creates a Client using the given http.Client.
func NewClientWithHTTP(settings domain.SourceSettings, logger ports.Logger, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiBase:    strings.TrimRight(settings.APIBase, "/"),
		owner:      settings.Owner,
		repo:       settings.Repo,
		branch:     settings.Branch,
		token:      settings.Token,
	}
}

// contentItem is one element of the contents API response.
type contentItem struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Sha         string  `json:"sha"`
	DownloadURL *string `json:"download_url"`
}

// ListDirectory returns the entries of path on the configured branch.
func (c *Client) ListDirectory(ctx context.Context, path string) ([]domain.RemoteFile, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.apiBase, c.owner, c.repo, path, url.QueryEscape(c.branch))

	c.logger.Debug("listing " + endpoint)

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, err
	}

	var items []contentItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteDecodeFailed.Error()), "url", endpoint)
	}

	files := make([]domain.RemoteFile, 0, len(items))
	for _, item := range items {
		file := domain.RemoteFile{
			Name: item.Name,
			Kind: domain.FileKind(item.Type),
			Hash: item.Sha,
		}
		if item.DownloadURL != nil {
			file.DownloadURL = *item.DownloadURL
		}
		files = append(files, file)
	}
	return files, nil
}

// FetchContent downloads the raw file at location.
func (c *Client) FetchContent(ctx context.Context, location string) (string, error) {
	c.logger.Debug("fetching " + location)

	body, err := c.get(ctx, location, false)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string, api bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "url", endpoint)
	}

	req.Header.Set("User-Agent", build.UserAgent())
	if api {
		req.Header.Set("Accept", acceptHeader)
		if c.token != "" {
			req.Header.Set("Authorization", "token "+c.token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "url", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "url", endpoint)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		remoteErr := &domain.RemoteError{URL: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
		if remoteErr.RateLimited() {
			c.logger.Warn(fmt.Sprintf(
				"GitHub API rate limit exceeded (remaining: %s, resets at: %s); set %s to raise the limit",
				headerOr(resp.Header, "X-RateLimit-Remaining", "?"),
				resetTime(resp.Header.Get("X-RateLimit-Reset")),
				domain.TokenEnvVar,
			))
		}
		return nil, remoteErr
	}

	return body, nil
}

func headerOr(h http.Header, key, fallback string) string {
	if v := h.Get(key); v != "" {
		return v
	}
	return fallback
}

func resetTime(epoch string) string {
	var secs int64
	if _, err := fmt.Sscanf(epoch, "%d", &secs); err != nil || secs == 0 {
		return "?"
	}
	return time.Unix(secs, 0).UTC().Format(time.RFC3339)
}
