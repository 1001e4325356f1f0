package binaryfinder

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/platform"
	"go.uber.org/zap"
)

var _linux = platform.Platform{GOOS: "linux", GOARCH: "amd64"}

func writeFile(t *testing.T, path, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o755))
}

func newNodeModulesStrategy(env map[string]string) *nodeModulesStrategy {
	return &nodeModulesStrategy{
		fs:       fs.New(),
		platform: _linux,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		logger: zap.NewNop().Sugar(),
	}
}

func TestNodeModulesStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("npm layout", func(t *testing.T) {
		root := t.TempDir()
		nm := filepath.Join(root, "node_modules")
		writeFile(t, filepath.Join(nm, "@pglt", "pglt", "package.json"), `{"name": "@pglt/pglt"}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "package.json"), `{"name": "pglt-x86_64-linux-gnu"}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt"), "bin")

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt")), loc)
	})

	t.Run("installed in an ancestor", func(t *testing.T) {
		workspace := t.TempDir()
		nm := filepath.Join(workspace, "node_modules")
		writeFile(t, filepath.Join(nm, "@pglt", "pglt", "package.json"), `{}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "package.json"), `{}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt"), "bin")
		root := filepath.Join(workspace, "packages", "db")
		require.NoError(t, os.MkdirAll(root, 0o755))

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt")), loc)
	})

	t.Run("platform package nested in host package", func(t *testing.T) {
		root := t.TempDir()
		host := filepath.Join(root, "node_modules", "@pglt", "pglt")
		writeFile(t, filepath.Join(host, "package.json"), `{}`)
		writeFile(t, filepath.Join(host, "node_modules", "pglt-x86_64-linux-gnu", "package.json"), `{}`)
		writeFile(t, filepath.Join(host, "node_modules", "pglt-x86_64-linux-gnu", "pglt"), "bin")

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(host, "node_modules", "pglt-x86_64-linux-gnu", "pglt")), loc)
	})

	t.Run("pnpm layout", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		root := t.TempDir()
		store := filepath.Join(root, "node_modules", ".pnpm", "@pglt+pglt@0.1.0", "node_modules")
		writeFile(t, filepath.Join(store, "@pglt", "pglt", "package.json"), `{}`)
		writeFile(t, filepath.Join(store, "pglt-x86_64-linux-gnu", "package.json"), `{}`)
		writeFile(t, filepath.Join(store, "pglt-x86_64-linux-gnu", "pglt"), "bin")

		require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "@pglt"), 0o755))
		require.NoError(t, os.Symlink(filepath.Join(store, "@pglt", "pglt"), filepath.Join(root, "node_modules", "@pglt", "pglt")))

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)

		realStore, err := filepath.EvalSymlinks(store)
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(realStore, "pglt-x86_64-linux-gnu", "pglt")), loc)
	})

	t.Run("NODE_PATH", func(t *testing.T) {
		root := t.TempDir()
		global := t.TempDir()
		writeFile(t, filepath.Join(global, "@pglt", "pglt", "package.json"), `{}`)
		writeFile(t, filepath.Join(global, "pglt-x86_64-linux-gnu", "package.json"), `{}`)
		writeFile(t, filepath.Join(global, "pglt-x86_64-linux-gnu", "pglt"), "bin")

		loc, err := newNodeModulesStrategy(map[string]string{"NODE_PATH": global}).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(global, "pglt-x86_64-linux-gnu", "pglt")), loc)
	})

	t.Run("host package not installed", func(t *testing.T) {
		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: t.TempDir()})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})

	t.Run("platform package not installed", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "node_modules", "@pglt", "pglt", "package.json"), `{}`)

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})

	t.Run("binary missing", func(t *testing.T) {
		root := t.TempDir()
		nm := filepath.Join(root, "node_modules")
		writeFile(t, filepath.Join(nm, "@pglt", "pglt", "package.json"), `{}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "package.json"), `{}`)

		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})

	t.Run("invalid manifest", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "node_modules", "@pglt", "pglt", "package.json"), `{"name": `)

		_, err := newNodeModulesStrategy(nil).Find(ctx, Scope{Root: root})
		assert.ErrorIs(t, err, errors.ErrInvalidManifest)
	})

	t.Run("no root", func(t *testing.T) {
		loc, err := newNodeModulesStrategy(nil).Find(ctx, Scope{})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		s := newNodeModulesStrategy(nil)
		s.platform = platform.Platform{GOOS: "plan9", GOARCH: "386"}
		loc, err := s.Find(ctx, Scope{Root: t.TempDir()})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})
}

func TestLookupPaths(t *testing.T) {
	s := newNodeModulesStrategy(map[string]string{"NODE_PATH": "/global/a" + string(os.PathListSeparator) + "/global/b"})
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	root := filepath.Join(string(filepath.Separator), "ws", "node_modules", "pkg")
	paths := s.lookupPaths(root)

	want := []string{
		filepath.Join(root, "node_modules"),
		filepath.Join(string(filepath.Separator), "ws", "node_modules"),
		filepath.Join(string(filepath.Separator), "node_modules"),
		"/global/a",
		"/global/b",
		filepath.Join(home, ".node_modules"),
		filepath.Join(home, ".node_libraries"),
	}
	assert.Equal(t, want, paths)
}
