package binaryfinder

import (
	"context"
	"path/filepath"

	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"go.uber.org/zap"
)

const (
	_strategySetting     = "setting"
	_strategyNodeModules = "node-modules"
	_strategyPnP         = "yarn-pnp"
	_strategyPath        = "path"
	_strategyDownload    = "download"
)

// settingStrategy returns the binary path declared in the settings, if any.
type settingStrategy struct {
	settings settings.Settings
}

func (s *settingStrategy) Name() string { return _strategySetting }

func (s *settingStrategy) Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error) {
	return entity.BinaryLocation(s.settings.BinaryPath(scope.Folder)), nil
}

// pathStrategy scans the directories in PATH.
type pathStrategy struct {
	fs         fs.PgltFS
	binaryName string
	lookupEnv  func(string) (string, bool)
	logger     *zap.SugaredLogger
}

func (s *pathStrategy) Name() string { return _strategyPath }

func (s *pathStrategy) Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error) {
	pathEnv, ok := s.lookupEnv("PATH")
	if !ok || pathEnv == "" {
		s.logger.Debugw("PATH is not set")
		return "", nil
	}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, s.binaryName)
		exists, err := s.fs.FileExists(candidate)
		if err != nil {
			s.logger.Debugw("could not check PATH entry", "path", candidate, "error", err)
			continue
		}
		if exists {
			return entity.BinaryLocation(candidate), nil
		}
	}

	s.logger.Debugw("binary not found in PATH", "binary", s.binaryName)
	return "", nil
}

// downloadStrategy returns a previously downloaded binary.
type downloadStrategy struct {
	downloader downloader.Controller
}

func (s *downloadStrategy) Name() string { return _strategyDownload }

func (s *downloadStrategy) Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error) {
	v, err := s.downloader.GetDownloadedVersion(ctx)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return v.BinPath, nil
}

// noPackageManifest is false when a package.json exists anywhere under the root.
// Without a root it is always true.
func noPackageManifest(pfs fs.PgltFS) Condition {
	return func(ctx context.Context, scope Scope) (bool, error) {
		if scope.Root == "" {
			return true, nil
		}
		found, err := pfs.ContainsFile(scope.Root, _packageManifest, ".git", _nodeModules)
		if err != nil {
			return false, err
		}
		return !found, nil
	}
}
