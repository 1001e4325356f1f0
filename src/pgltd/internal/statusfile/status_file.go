package statusfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyStatusFile = "statusFilePath"
	_statusFileMode      = os.FileMode(0644)
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// StatusFile manages the contents of a single JSON status file.
// The editor reads it to render the status indicator and to find server output files.
type StatusFile interface {
	UpdateField(key string, value string) error
	UpdateFields(fields map[string]string) error
	RemoveField(key string) error
	Path() string
}

type module struct {
	statusFile   string
	fs           fs.PgltFS
	logger       *zap.SugaredLogger
	fileContents map[string]string
	mu           sync.Mutex
}

// Params define values to be used by StatusFile.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.PgltFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a new StatusFile which manages contents of a single status file.
func New(p Params) (StatusFile, error) {
	m := module{
		fs:           p.FS,
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return &m, nil
}

func (m *module) OnStop(ctx context.Context) error {
	if m.statusFile != "" {
		if err := m.fs.Remove(m.statusFile); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

func (m *module) Path() string {
	return m.statusFile
}

func (m *module) UpdateField(key string, value string) error {
	return m.UpdateFields(map[string]string{key: value})
}

func (m *module) UpdateFields(fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range fields {
		m.fileContents[k] = v
	}
	if err := m.flush(); err != nil {
		return err
	}
	m.logger.Debugw("status saved", zap.String("file", m.statusFile), zap.Any("fields", fields))
	return nil
}

func (m *module) RemoveField(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fileContents[key]; !ok {
		return nil
	}
	delete(m.fileContents, key)
	return m.flush()
}

func (m *module) flush() error {
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.WriteFile(m.statusFile, jsonOutput, _statusFileMode); err != nil {
		return fmt.Errorf("writing status file: %w", err)
	}
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyStatusFile)
	if err := val.Populate(&m.statusFile); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyStatusFile, err)
	}

	if m.statusFile == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyStatusFile)
	}

	return nil
}
