// Package downloader installs language server binaries published as GitHub release assets.
package downloader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/gateway/github"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/platform"
	"github.com/supabase-community/pgltd/src/pgltd/repository/state"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// DownloadedVersionKey is the state key holding the installed version.
	DownloadedVersionKey = "downloadedVersion"

	_serverDir  = "server"
	_perPage    = 100
	_maxPages   = 30
	_binaryMode = 0o755
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Controller manages the downloaded language server binary.
type Controller interface {
	// GetDownloadedVersion returns the installed version, or nil when nothing is installed.
	GetDownloadedVersion(ctx context.Context) (*entity.DownloadedVersion, error)
	// Download installs the given version and returns its location.
	Download(ctx context.Context, version string) (entity.BinaryLocation, error)
	// ListReleases returns published releases, newest first. Drafts are never included.
	ListReleases(ctx context.Context, withPrereleases bool) ([]entity.Release, error)
	// Clear removes the installed binary and its record.
	Clear(ctx context.Context) error
}

// Params are the dependencies required to create the Controller.
type Params struct {
	fx.In

	State  state.Store
	Github github.Gateway
	FS     fs.PgltFS
	Logger *zap.SugaredLogger
}

type controller struct {
	state    state.Store
	github   github.Gateway
	fs       fs.PgltFS
	logger   *zap.SugaredLogger
	platform platform.Platform
}

// New creates a downloader for the current platform.
func New(p Params) Controller {
	return &controller{
		state:    p.State,
		github:   p.Github,
		fs:       p.FS,
		logger:   p.Logger,
		platform: platform.Current(),
	}
}

func (c *controller) binaryDir() string {
	return filepath.Join(c.state.Dir(), _serverDir)
}

func (c *controller) GetDownloadedVersion(ctx context.Context) (*entity.DownloadedVersion, error) {
	var record entity.DownloadedVersion
	ok, err := c.state.Get(ctx, DownloadedVersionKey, &record)
	if err != nil {
		return nil, fmt.Errorf("reading downloaded version: %w", err)
	}
	if !ok || record.BinPath == "" {
		return nil, nil
	}

	exists, err := c.fs.FileExists(record.BinPath.String())
	if err != nil {
		return nil, fmt.Errorf("checking downloaded binary: %w", err)
	}
	if !exists {
		c.logger.Debugw("downloaded binary is missing", "version", record.Version, "path", record.BinPath)
		return nil, nil
	}
	return &record, nil
}

func (c *controller) Download(ctx context.Context, version string) (entity.BinaryLocation, error) {
	asset := c.platform.ReleasedAssetName()
	if asset == "" {
		return "", &errors.DownloadFault{Version: version, Err: errors.ErrUnsupportedPlatform}
	}
	assetURL := c.github.AssetURL(version, asset)

	fault := func(err error) error {
		return &errors.DownloadFault{Version: version, URL: assetURL, Err: err}
	}

	c.logger.Infow("downloading language server", "version", version, "url", assetURL)

	body, err := c.github.OpenAsset(ctx, version, asset)
	if err != nil {
		return "", fault(err)
	}
	defer body.Close()

	dir := c.binaryDir()
	if err := c.fs.MkdirAll(dir); err != nil {
		return "", fault(fmt.Errorf("creating binary folder: %w", err))
	}

	dest := filepath.Join(dir, c.platform.BinaryName())
	if err := c.install(body, dest); err != nil {
		return "", fault(err)
	}

	record := entity.DownloadedVersion{Version: version, BinPath: entity.BinaryLocation(dest)}
	if err := c.state.Set(ctx, DownloadedVersionKey, record); err != nil {
		return "", fault(fmt.Errorf("recording downloaded version: %w", err))
	}

	c.logger.Infow("downloaded language server", "version", version, "path", dest)
	return record.BinPath, nil
}

// install writes the binary next to dest and renames it into place.
func (c *controller) install(body io.Reader, dest string) error {
	tmp, err := c.fs.TempFile(filepath.Dir(dest), filepath.Base(dest)+".download-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		c.fs.Remove(tmpName)
		return fmt.Errorf("writing binary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		c.fs.Remove(tmpName)
		return fmt.Errorf("writing binary: %w", err)
	}

	if c.platform.EnforcesExecutableBit() {
		if err := c.fs.Chmod(tmpName, _binaryMode); err != nil {
			c.fs.Remove(tmpName)
			return fmt.Errorf("making binary executable: %w", err)
		}
	}

	if err := c.fs.Rename(tmpName, dest); err != nil {
		c.fs.Remove(tmpName)
		return fmt.Errorf("installing binary: %w", err)
	}
	return nil
}

func (c *controller) ListReleases(ctx context.Context, withPrereleases bool) ([]entity.Release, error) {
	var releases []entity.Release
	for page := 1; page <= _maxPages; page++ {
		batch, err := c.github.ListReleases(ctx, page, _perPage)
		if err != nil {
			return nil, fmt.Errorf("listing releases: %w", err)
		}

		for _, r := range batch {
			if r.Draft || (r.Prerelease && !withPrereleases) {
				continue
			}
			releases = append(releases, r)
		}

		if len(batch) < _perPage {
			break
		}
	}

	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].PublishedAt.After(releases[j].PublishedAt)
	})
	return releases, nil
}

func (c *controller) Clear(ctx context.Context) error {
	if err := c.fs.RemoveAll(c.binaryDir()); err != nil {
		return fmt.Errorf("removing binary folder: %w", err)
	}
	if err := c.state.Delete(ctx, DownloadedVersionKey); err != nil {
		return fmt.Errorf("clearing downloaded version: %w", err)
	}
	c.logger.Infow("cleared downloaded language server", "path", c.binaryDir())
	return nil
}
