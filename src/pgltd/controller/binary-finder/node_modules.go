package binaryfinder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/platform"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	_nodeModules     = "node_modules"
	_packageManifest = "package.json"
)

// nodeModulesStrategy finds the binary shipped in the platform package that the npm package depends on.
type nodeModulesStrategy struct {
	fs        fs.PgltFS
	platform  platform.Platform
	lookupEnv func(string) (string, bool)
	logger    *zap.SugaredLogger
}

func (s *nodeModulesStrategy) Name() string { return _strategyNodeModules }

func (s *nodeModulesStrategy) Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error) {
	if scope.Root == "" {
		s.logger.Debugw("no project root, skipping node modules lookup")
		return "", nil
	}

	platformPkg := s.platform.NodePackageName()
	if platformPkg == "" {
		s.logger.Debugw("no node package published for this platform", "os", s.platform.GOOS, "arch", s.platform.GOARCH)
		return "", nil
	}

	hostManifest, err := s.resolveManifest(platform.NpmPackageName, scope.Root)
	if err != nil || hostManifest == "" {
		return "", err
	}

	// Package managers such as pnpm link packages from a shared store. The
	// platform package is a sibling of the real host package, not of the link.
	realManifest, err := s.fs.EvalSymlinks(hostManifest)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", hostManifest, err)
	}
	if err := s.validateManifest(realManifest); err != nil {
		return "", err
	}

	binManifest, err := s.resolveManifest(platformPkg, filepath.Dir(realManifest))
	if err != nil || binManifest == "" {
		return "", err
	}
	if err := s.validateManifest(binManifest); err != nil {
		return "", err
	}

	bin := filepath.Join(filepath.Dir(binManifest), s.platform.BinaryName())
	exists, err := s.fs.FileExists(bin)
	if err != nil {
		return "", err
	}
	if !exists {
		s.logger.Debugw("platform package has no binary", "path", bin)
		return "", nil
	}
	return entity.BinaryLocation(bin), nil
}

// resolveManifest returns the package.json of pkg as seen from dir, or "" when pkg is not installed.
// It walks up the node_modules folders of dir and its ancestors, then the global folders.
func (s *nodeModulesStrategy) resolveManifest(pkg, dir string) (string, error) {
	for _, candidate := range s.lookupPaths(dir) {
		manifest := filepath.Join(candidate, filepath.FromSlash(pkg), _packageManifest)
		exists, err := s.fs.FileExists(manifest)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", manifest, err)
		}
		if exists {
			return manifest, nil
		}
	}

	s.logger.Debugw("package not installed", "package", pkg, "from", dir)
	return "", nil
}

func (s *nodeModulesStrategy) lookupPaths(dir string) []string {
	var paths []string
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		if filepath.Base(d) != _nodeModules {
			paths = append(paths, filepath.Join(d, _nodeModules))
		}
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}

	if nodePath, ok := s.lookupEnv("NODE_PATH"); ok {
		for _, p := range filepath.SplitList(nodePath) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	if home, err := s.fs.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".node_modules"), filepath.Join(home, ".node_libraries"))
	}
	return paths
}

func (s *nodeModulesStrategy) validateManifest(path string) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s: %w", path, errors.ErrInvalidManifest)
	}
	return nil
}
