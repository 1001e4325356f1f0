package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs/fsmock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings/settingsmock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDiscoverFolder(t *testing.T) {
	folder := entity.WorkspaceFolder{Name: "api", Path: "/ws/api"}

	tests := []struct {
		name       string
		configFile string
		exists     bool
		existsErr  error
		wantPath   string
		wantNil    bool
		wantErr    bool
	}{
		{
			name:     "default config file",
			exists:   true,
			wantPath: filepath.Join("/ws/api", "pglt.toml"),
		},
		{
			name:       "relative configured file",
			configFile: "config/pglt.toml",
			exists:     true,
			wantPath:   filepath.Join("/ws/api", "config/pglt.toml"),
		},
		{
			name:       "absolute configured file",
			configFile: "/etc/pglt.toml",
			exists:     true,
			wantPath:   "/etc/pglt.toml",
		},
		{
			name:     "missing config file",
			exists:   false,
			wantPath: filepath.Join("/ws/api", "pglt.toml"),
			wantNil:  true,
		},
		{
			name:      "stat failure",
			existsErr: assert.AnError,
			wantPath:  filepath.Join("/ws/api", "pglt.toml"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settingsMock := settingsmock.NewMockSettings(ctrl)
			settingsMock.EXPECT().ConfigFile(&folder).Return(tt.configFile)
			fsMock := fsmock.NewMockPgltFS(ctrl)
			fsMock.EXPECT().FileExists(tt.wantPath).Return(tt.exists, tt.existsErr)

			c := New(Params{Settings: settingsMock, FS: fsMock, Logger: zap.NewNop().Sugar()})
			p, err := c.DiscoverFolder(context.Background(), folder)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, "/ws/api", p.Root)
			assert.Equal(t, tt.wantPath, p.ConfigPath)
			assert.Equal(t, &folder, p.Folder)
		})
	}
}

func TestDiscover(t *testing.T) {
	api := entity.WorkspaceFolder{Name: "api", Path: "/ws/api"}
	web := entity.WorkspaceFolder{Name: "web", Path: "/ws/web"}
	docs := entity.WorkspaceFolder{Name: "docs", Path: "/ws/docs"}

	ctrl := gomock.NewController(t)
	settingsMock := settingsmock.NewMockSettings(ctrl)
	settingsMock.EXPECT().WorkspaceFolders().Return([]entity.WorkspaceFolder{api, web, docs})
	settingsMock.EXPECT().EnabledForFolder(api).Return(true)
	settingsMock.EXPECT().EnabledForFolder(web).Return(false)
	settingsMock.EXPECT().EnabledForFolder(docs).Return(true)
	settingsMock.EXPECT().ConfigFile(gomock.Any()).Return("").Times(2)

	fsMock := fsmock.NewMockPgltFS(ctrl)
	fsMock.EXPECT().FileExists(filepath.Join("/ws/api", "pglt.toml")).Return(true, nil)
	fsMock.EXPECT().FileExists(filepath.Join("/ws/docs", "pglt.toml")).Return(false, nil)

	c := New(Params{Settings: settingsMock, FS: fsMock, Logger: zap.NewNop().Sugar()})
	projects, err := c.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "/ws/api", projects[0].Root)
	assert.Equal(t, "api", projects[0].Folder.Name)
}

func TestDiscoverError(t *testing.T) {
	api := entity.WorkspaceFolder{Name: "api", Path: "/ws/api"}

	ctrl := gomock.NewController(t)
	settingsMock := settingsmock.NewMockSettings(ctrl)
	settingsMock.EXPECT().WorkspaceFolders().Return([]entity.WorkspaceFolder{api})
	settingsMock.EXPECT().EnabledForFolder(api).Return(true)
	settingsMock.EXPECT().ConfigFile(gomock.Any()).Return("")

	fsMock := fsmock.NewMockPgltFS(ctrl)
	fsMock.EXPECT().FileExists(gomock.Any()).Return(false, assert.AnError)

	c := New(Params{Settings: settingsMock, FS: fsMock, Logger: zap.NewNop().Sugar()})
	_, err := c.Discover(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
