package binaryfinder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader/downloadermock"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor/executormock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings/settingsmock"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type finderMocks struct {
	settings   *settingsmock.MockSettings
	downloader *downloadermock.MockController
	stats      tally.TestScope
}

func newTestFinder(t *testing.T, pathEnv string) (*controller, finderMocks) {
	ctrl := gomock.NewController(t)
	mocks := finderMocks{
		settings:   settingsmock.NewMockSettings(ctrl),
		downloader: downloadermock.NewMockController(ctrl),
		stats:      tally.NewTestScope("testing", make(map[string]string, 0)),
	}

	p := Params{
		Settings:   mocks.settings,
		Downloader: mocks.downloader,
		Executor:   executormock.NewMockExecutor(ctrl),
		FS:         fs.New(),
		Stats:      mocks.stats,
		Logger:     zap.NewNop().Sugar(),
	}
	env := map[string]string{"PATH": pathEnv}
	c := newController(p, _linux, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	return c, mocks
}

func counterValue(t *testing.T, scope tally.TestScope, key string) int64 {
	counter, ok := scope.Snapshot().Counters()[key]
	require.True(t, ok, "missing counter %s", key)
	return counter.Value()
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := New(Params{
		Settings:   settingsmock.NewMockSettings(ctrl),
		Downloader: downloadermock.NewMockController(ctrl),
		Executor:   executormock.NewMockExecutor(ctrl),
		FS:         fs.New(),
		Stats:      tally.NoopScope,
		Logger:     zap.NewNop().Sugar(),
	}).(*controller)

	names := func(chain Chain) []string {
		var out []string
		for _, e := range chain {
			out = append(out, e.Strategy.Name())
		}
		return out
	}
	assert.Equal(t, []string{"setting", "path", "download"}, names(c.global))
	assert.Equal(t, []string{"setting", "node-modules", "yarn-pnp", "path", "download"}, names(c.local))
	assert.NotNil(t, c.local[len(c.local)-1].Condition)
	assert.Nil(t, c.global[len(c.global)-1].Condition)
}

func TestFindGlobally(t *testing.T) {
	ctx := context.Background()

	t.Run("declared setting", func(t *testing.T) {
		c, mocks := newTestFinder(t, "")
		mocks.settings.EXPECT().BinaryPath(nil).Return("/opt/bin/pglt")

		loc, ok := c.FindGlobally(ctx)
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation("/opt/bin/pglt"), loc)
		assert.Equal(t, int64(1), counterValue(t, mocks.stats, "testing.binary_resolution+scope=global,strategy=setting"))
	})

	t.Run("PATH", func(t *testing.T) {
		bin := t.TempDir()
		writeFile(t, filepath.Join(bin, "pglt"), "bin")

		c, mocks := newTestFinder(t, bin)
		mocks.settings.EXPECT().BinaryPath(nil).Return("")

		loc, ok := c.FindGlobally(ctx)
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(bin, "pglt")), loc)
	})

	t.Run("downloaded", func(t *testing.T) {
		c, mocks := newTestFinder(t, t.TempDir())
		mocks.settings.EXPECT().BinaryPath(nil).Return("")
		mocks.downloader.EXPECT().GetDownloadedVersion(gomock.Any()).Return(&entity.DownloadedVersion{Version: "0.1.0", BinPath: "/storage/server/pglt"}, nil)

		loc, ok := c.FindGlobally(ctx)
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation("/storage/server/pglt"), loc)
	})

	t.Run("not found", func(t *testing.T) {
		c, mocks := newTestFinder(t, t.TempDir())
		mocks.settings.EXPECT().BinaryPath(nil).Return("")
		mocks.downloader.EXPECT().GetDownloadedVersion(gomock.Any()).Return(nil, nil)

		loc, ok := c.FindGlobally(ctx)
		assert.False(t, ok)
		assert.Empty(t, loc)
		assert.Equal(t, int64(1), counterValue(t, mocks.stats, "testing.binary_resolution+scope=global,strategy=none"))
	})
}

func TestFindLocally(t *testing.T) {
	ctx := context.Background()

	t.Run("folder setting", func(t *testing.T) {
		c, mocks := newTestFinder(t, "")
		folder := &entity.WorkspaceFolder{Name: "api", Path: "/ws/api"}
		mocks.settings.EXPECT().BinaryPath(folder).Return("/ws/api/pglt")

		loc, ok := c.FindLocally(ctx, &entity.Project{Root: "/ws/api", Folder: folder})
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation("/ws/api/pglt"), loc)
	})

	t.Run("node modules before PATH", func(t *testing.T) {
		bin := t.TempDir()
		writeFile(t, filepath.Join(bin, "pglt"), "bin")

		root := t.TempDir()
		nm := filepath.Join(root, "node_modules")
		writeFile(t, filepath.Join(nm, "@pglt", "pglt", "package.json"), `{}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "package.json"), `{}`)
		writeFile(t, filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt"), "bin")

		c, mocks := newTestFinder(t, bin)
		mocks.settings.EXPECT().BinaryPath(gomock.Any()).Return("")

		loc, ok := c.FindLocally(ctx, &entity.Project{Root: root})
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(nm, "pglt-x86_64-linux-gnu", "pglt")), loc)
		assert.Equal(t, int64(1), counterValue(t, mocks.stats, "testing.binary_resolution+scope=local,strategy=node-modules"))
	})

	t.Run("package.json skips download", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "package.json"), `{}`)

		c, mocks := newTestFinder(t, t.TempDir())
		mocks.settings.EXPECT().BinaryPath(gomock.Any()).Return("")
		mocks.downloader.EXPECT().GetDownloadedVersion(gomock.Any()).Times(0)

		loc, ok := c.FindLocally(ctx, &entity.Project{Root: root})
		assert.False(t, ok)
		assert.Empty(t, loc)
	})

	t.Run("download without package.json", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "pglt.toml"), "")

		c, mocks := newTestFinder(t, t.TempDir())
		mocks.settings.EXPECT().BinaryPath(gomock.Any()).Return("")
		mocks.downloader.EXPECT().GetDownloadedVersion(gomock.Any()).Return(&entity.DownloadedVersion{Version: "0.1.0", BinPath: "/storage/server/pglt"}, nil)

		loc, ok := c.FindLocally(ctx, &entity.Project{Root: root})
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation("/storage/server/pglt"), loc)
	})

	t.Run("faulty manifest falls through to PATH", func(t *testing.T) {
		bin := t.TempDir()
		writeFile(t, filepath.Join(bin, "pglt"), "bin")

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "node_modules", "@pglt", "pglt", "package.json"), `{`)

		c, mocks := newTestFinder(t, bin)
		mocks.settings.EXPECT().BinaryPath(gomock.Any()).Return("")

		loc, ok := c.FindLocally(ctx, &entity.Project{Root: root})
		assert.True(t, ok)
		assert.Equal(t, entity.BinaryLocation(filepath.Join(bin, "pglt")), loc)
	})
}
