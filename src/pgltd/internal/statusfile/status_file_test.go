package statusfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newConfigProvider(t *testing.T, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
statusFilePath: /my/sample/path/.pgltd-status
`,
		"missingKey": `
otherKey: /my/sample/path/.pgltd-status
`,
		"missingValue": `
statusFilePath:
otherKey: sample
`,
		"formatProblem": `
statusFilePath:
  file: /sample/.file
  address:
    key: val`,
	}

	provider, err := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	require.NoError(t, err)
	return provider
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		configKey string
		wantErr   bool
	}{
		{
			name:      "all required params are present",
			configKey: "valid",
			wantErr:   false,
		},
		{
			name:      "config processing error",
			configKey: "missingKey",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := New(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    newConfigProvider(t, tt.configKey),
				FS:        fs.New(),
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "/my/sample/path/.pgltd-status", sf.Path())
			}
		})
	}
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		statusPath := filepath.Join(t.TempDir(), "status.json")
		require.NoError(t, os.WriteFile(statusPath, []byte("{}"), 0644))

		m := module{
			fs:         fs.New(),
			logger:     zap.NewNop().Sugar(),
			statusFile: statusPath,
		}

		assert.NoError(t, m.OnStop(context.Background()))
		_, err := os.Stat(statusPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file never written", func(t *testing.T) {
		m := module{
			fs:         fs.New(),
			logger:     zap.NewNop().Sugar(),
			statusFile: filepath.Join(t.TempDir(), "status.json"),
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("file removal error", func(t *testing.T) {
		// A non-empty directory cannot be removed with os.Remove.
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "child"), nil, 0644))

		m := module{
			fs:         fs.New(),
			logger:     zap.NewNop().Sugar(),
			statusFile: dir,
		}
		assert.Error(t, m.OnStop(context.Background()))
	})
}

func TestUpdateFields(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		statusPath := filepath.Join(t.TempDir(), "status.json")
		m := module{
			statusFile:   statusPath,
			fs:           fs.New(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		steps := []struct {
			apply      func() error
			expectJSON string
		}{
			{
				apply:      func() error { return m.UpdateField("state", "starting") },
				expectJSON: `{"state":"starting"}`,
			},
			{
				apply: func() error {
					return m.UpdateFields(map[string]string{"state": "started", "icon": "$(check)"})
				},
				expectJSON: `{"icon":"$(check)","state":"started"}`,
			},
			{
				apply:      func() error { return m.RemoveField("icon") },
				expectJSON: `{"state":"started"}`,
			},
			{
				apply:      func() error { return m.RemoveField("missing") },
				expectJSON: `{"state":"started"}`,
			},
		}

		for _, step := range steps {
			require.NoError(t, step.apply())
			contents, err := os.ReadFile(statusPath)
			require.NoError(t, err)
			assert.Equal(t, step.expectJSON, string(contents))
		}
	})

	t.Run("file write failure", func(t *testing.T) {
		m := module{
			statusFile:   t.TempDir(),
			fs:           fs.New(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		assert.Error(t, m.UpdateField("key", "value"))
	})
}

func TestWritesThroughFS(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockPgltFS(ctrl)
	lc := fxtest.NewLifecycle(t)

	sf, err := New(Params{
		Config:    newConfigProvider(t, "valid"),
		FS:        fsMock,
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)

	gomock.InOrder(
		fsMock.EXPECT().WriteFile("/my/sample/path/.pgltd-status", []byte(`{"state":"started"}`), os.FileMode(0644)).Return(nil),
		fsMock.EXPECT().WriteFile("/my/sample/path/.pgltd-status", gomock.Any(), gomock.Any()).Return(errors.New("read-only file system")),
		fsMock.EXPECT().Remove("/my/sample/path/.pgltd-status").Return(&os.PathError{Op: "remove", Err: os.ErrNotExist}),
	)

	lc.RequireStart()
	require.NoError(t, sf.UpdateField("state", "started"))
	assert.ErrorContains(t, sf.UpdateField("version", "0.1.0"), "read-only file system")
	lc.RequireStop()
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		configKey   string
		wantErr     bool
		errorString string
	}{
		{
			name:      "valid configuration",
			configKey: "valid",
			wantErr:   false,
		},
		{
			name:        "missing path key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"statusFilePath\" in config",
		},
		{
			name:        "missing path value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"statusFilePath\" in config",
		},
		{
			name:      "incorrectly formatted entry",
			configKey: "formatProblem",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{
				logger: zap.NewNop().Sugar(),
			}
			err := m.processConfig(newConfigProvider(t, tt.configKey))

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Equal(t, tt.errorString, err.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
