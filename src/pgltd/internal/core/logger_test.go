package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		loggingConfig string
		expectError   bool
	}{
		{
			name: "info level json encoding",
			loggingConfig: `
logging:
  level: info
  development: false
  encoding: json
  outputPaths:
    - stderr
`,
			expectError: false,
		},
		{
			name: "debug level console encoding",
			loggingConfig: `
logging:
  level: debug
  development: true
  encoding: console
  outputPaths:
    - stderr
`,
			expectError: false,
		},
		{
			name: "error level default encoding and output",
			loggingConfig: `
logging:
  level: error
  development: false
`,
			expectError: false,
		},
		{
			name: "invalid level",
			loggingConfig: `
logging:
  level: invalid
  encoding: json
`,
			expectError: true,
		},
		{
			name: "unopenable output",
			loggingConfig: `
logging:
  level: info
  outputPaths:
    - /nonexistent/dir/pgltd.log
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(
				config.Source(strings.NewReader(tt.loggingConfig)),
			)
			require.NoError(t, err)

			sugared, err := NewSugaredLogger(provider)
			if tt.expectError {
				assert.Error(t, err, "Expected error for invalid config")
				return
			}
			require.NoError(t, err)

			logger := NewLogger(sugared)
			require.NotNil(t, logger)
			logger.Info("test message")
		})
	}
}

func TestLoggingConfig_Populate(t *testing.T) {
	configYAML := strings.NewReader(`
logging:
  level: warn
  development: true
  encoding: console
  outputPaths:
    - stdout
    - stderr
`)

	provider, err := config.NewYAML(config.Source(configYAML))
	require.NoError(t, err)

	var loggingConfig LoggingConfig
	err = provider.Get("logging").Populate(&loggingConfig)
	require.NoError(t, err)

	assert.Equal(t, "warn", loggingConfig.Level)
	assert.True(t, loggingConfig.Development)
	assert.Equal(t, "console", loggingConfig.Encoding)
	assert.Equal(t, []string{"stdout", "stderr"}, loggingConfig.OutputPaths)
}

func TestLogger_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pgltd.log")
	provider, err := config.NewYAML(config.Source(strings.NewReader(`
logging:
  level: debug
  encoding: json
  outputPaths:
    - ` + logPath + `
`)))
	require.NoError(t, err)

	logger, err := NewSugaredLogger(provider)
	require.NoError(t, err)

	logger.Infow("structured message", "key1", "value1", "key2", 42)
	require.NoError(t, logger.Sync())

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"key1":"value1"`)
	assert.Contains(t, string(contents), `"msg":"structured message"`)
}
