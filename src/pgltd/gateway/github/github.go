// Package github talks to the GitHub releases of the language server.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyGithub = "github"

	_defaultAPIURL      = "https://api.github.com/repos/supabase-community/postgres_lsp"
	_defaultDownloadURL = "https://github.com/supabase-community/postgres_lsp/releases/download"
	_defaultTimeout     = 5 * time.Minute
	_maxRetries         = 3
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Gateway fetches release metadata and release assets.
type Gateway interface {
	// ListReleases returns one page of releases, newest first as reported by GitHub.
	ListReleases(ctx context.Context, page, perPage int) ([]entity.Release, error)
	// OpenAsset starts downloading a release asset. The caller closes the body.
	OpenAsset(ctx context.Context, version, asset string) (io.ReadCloser, error)
	// AssetURL returns the URL OpenAsset downloads from.
	AssetURL(version, asset string) string
}

// Params are the dependencies required to create a Gateway.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

// Config overrides the GitHub endpoints.
type Config struct {
	APIURL         string `yaml:"apiURL"`
	DownloadURL    string `yaml:"downloadURL"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type gateway struct {
	apiURL      string
	downloadURL string
	client      *http.Client
	logger      *zap.SugaredLogger
	newBackOff  func() backoff.BackOff
}

// New creates a Gateway for the endpoints in the "github" config key, falling back to the public ones.
func New(p Params) (Gateway, error) {
	var cfg Config
	if err := p.Config.Get(_configKeyGithub).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyGithub, err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = _defaultAPIURL
	}
	if cfg.DownloadURL == "" {
		cfg.DownloadURL = _defaultDownloadURL
	}
	timeout := _defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &gateway{
		apiURL:      cfg.APIURL,
		downloadURL: cfg.DownloadURL,
		client:      &http.Client{Timeout: timeout},
		logger:      p.Logger,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), _maxRetries)
		},
	}, nil
}

func (g *gateway) ListReleases(ctx context.Context, page, perPage int) ([]entity.Release, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	target := g.apiURL + "/releases?" + q.Encode()

	body, err := g.get(ctx, target, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var releases []entity.Release
	if err := json.NewDecoder(body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("decoding releases: %w", err)
	}
	return releases, nil
}

func (g *gateway) AssetURL(version, asset string) string {
	return g.downloadURL + "/" + url.PathEscape(version) + "/" + url.PathEscape(asset)
}

func (g *gateway) OpenAsset(ctx context.Context, version, asset string) (io.ReadCloser, error) {
	return g.get(ctx, g.AssetURL(version, asset), "application/octet-stream")
}

// get retries transport failures and server errors. Client errors are returned immediately.
func (g *gateway) get(ctx context.Context, target, accept string) (io.ReadCloser, error) {
	var body io.ReadCloser
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", accept)
		req.Header.Set("User-Agent", "pgltd")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			statusErr := &StatusError{URL: target, StatusCode: resp.StatusCode}
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}
		body = resp.Body
		return nil
	}

	notify := func(err error, wait time.Duration) {
		g.logger.Debugw("retrying github request", "url", target, "error", err, "wait", wait)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(g.newBackOff(), ctx), notify); err != nil {
		return nil, err
	}
	return body, nil
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error is an implementation of the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
