package binaryfinder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader/downloadermock"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs/fsmock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings/settingsmock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSettingStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	folder := &entity.WorkspaceFolder{Name: "api", Path: "/ws/api"}

	settingsMock := settingsmock.NewMockSettings(ctrl)
	settingsMock.EXPECT().BinaryPath(folder).Return("/ws/api/bin/pglt")
	settingsMock.EXPECT().BinaryPath(nil).Return("")

	s := &settingStrategy{settings: settingsMock}

	loc, err := s.Find(context.Background(), Scope{Root: "/ws/api", Folder: folder})
	require.NoError(t, err)
	assert.Equal(t, entity.BinaryLocation("/ws/api/bin/pglt"), loc)

	loc, err = s.Find(context.Background(), Scope{})
	require.NoError(t, err)
	assert.Empty(t, loc)
}

func TestPathStrategy(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		set     bool
		setup   func(m *fsmock.MockPgltFS)
		want    entity.BinaryLocation
		wantErr bool
	}{
		{
			name: "second entry",
			path: "/a" + string(os.PathListSeparator) + "/b",
			set:  true,
			setup: func(m *fsmock.MockPgltFS) {
				gomock.InOrder(
					m.EXPECT().FileExists(filepath.Join("/a", "tool")).Return(false, nil),
					m.EXPECT().FileExists(filepath.Join("/b", "tool")).Return(true, nil),
				)
			},
			want: entity.BinaryLocation(filepath.Join("/b", "tool")),
		},
		{
			name: "first entry wins",
			path: "/a" + string(os.PathListSeparator) + "/b",
			set:  true,
			setup: func(m *fsmock.MockPgltFS) {
				m.EXPECT().FileExists(filepath.Join("/a", "tool")).Return(true, nil)
			},
			want: entity.BinaryLocation(filepath.Join("/a", "tool")),
		},
		{
			name: "unreadable entry is skipped",
			path: "/a" + string(os.PathListSeparator) + "/b",
			set:  true,
			setup: func(m *fsmock.MockPgltFS) {
				m.EXPECT().FileExists(filepath.Join("/a", "tool")).Return(false, assert.AnError)
				m.EXPECT().FileExists(filepath.Join("/b", "tool")).Return(true, nil)
			},
			want: entity.BinaryLocation(filepath.Join("/b", "tool")),
		},
		{
			name: "not found",
			path: "/a",
			set:  true,
			setup: func(m *fsmock.MockPgltFS) {
				m.EXPECT().FileExists(filepath.Join("/a", "tool")).Return(false, nil)
			},
		},
		{
			name:  "unset",
			set:   false,
			setup: func(m *fsmock.MockPgltFS) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fsMock := fsmock.NewMockPgltFS(ctrl)
			tt.setup(fsMock)

			s := &pathStrategy{
				fs:         fsMock,
				binaryName: "tool",
				lookupEnv: func(key string) (string, bool) {
					assert.Equal(t, "PATH", key)
					return tt.path, tt.set
				},
				logger: zap.NewNop().Sugar(),
			}

			loc, err := s.Find(context.Background(), Scope{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc)
		})
	}
}

func TestDownloadStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("downloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := downloadermock.NewMockController(ctrl)
		dl.EXPECT().GetDownloadedVersion(gomock.Any()).Return(&entity.DownloadedVersion{Version: "0.1.0", BinPath: "/storage/server/pglt"}, nil)

		loc, err := (&downloadStrategy{downloader: dl}).Find(ctx, Scope{})
		require.NoError(t, err)
		assert.Equal(t, entity.BinaryLocation("/storage/server/pglt"), loc)
	})

	t.Run("nothing downloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := downloadermock.NewMockController(ctrl)
		dl.EXPECT().GetDownloadedVersion(gomock.Any()).Return(nil, nil)

		loc, err := (&downloadStrategy{downloader: dl}).Find(ctx, Scope{})
		require.NoError(t, err)
		assert.Empty(t, loc)
	})

	t.Run("state error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := downloadermock.NewMockController(ctrl)
		dl.EXPECT().GetDownloadedVersion(gomock.Any()).Return(nil, assert.AnError)

		_, err := (&downloadStrategy{downloader: dl}).Find(ctx, Scope{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNoPackageManifest(t *testing.T) {
	ctx := context.Background()
	cond := noPackageManifest(fs.New())

	t.Run("no root", func(t *testing.T) {
		ok, err := cond(ctx, Scope{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no manifest", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "pglt.toml"), nil, 0o644))

		ok, err := cond(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("nested manifest", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "packages", "web"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "packages", "web", "package.json"), []byte("{}"), 0o644))

		ok, err := cond(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("manifests in ignored folders", func(t *testing.T) {
		root := t.TempDir()
		for _, dir := range []string{"node_modules/dep", ".git/x"} {
			require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(root, dir, "package.json"), []byte("{}"), 0o644))
		}

		ok, err := cond(ctx, Scope{Root: root})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := cond(ctx, Scope{Root: filepath.Join(t.TempDir(), "missing")})
		assert.Error(t, err)
	})
}
