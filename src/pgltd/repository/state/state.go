// Package state persists small values across daemon restarts in a JSON file under the global storage directory.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyGlobalStoragePath = "storage.globalPath"
	_stateFileName              = "state.json"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Store is a key-value store backed by a single JSON document.
type Store interface {
	// Dir is the global storage directory that holds the state file.
	Dir() string
	// Get decodes the value stored under key into out and reports whether it was present.
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// Params are the dependencies required to create a Store.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.PgltFS
	Logger *zap.SugaredLogger
}

type store struct {
	dir    string
	fs     fs.PgltFS
	logger *zap.SugaredLogger

	mu sync.Mutex
}

// New creates the global storage directory if needed and returns a Store within it.
func New(p Params) (Store, error) {
	var dir string
	if err := p.Config.Get(_configKeyGlobalStoragePath).Populate(&dir); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyGlobalStoragePath, err)
	}
	if dir == "" {
		cache, err := p.FS.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("determining global storage: %w", err)
		}
		dir = filepath.Join(cache, "pgltd")
	}

	if err := p.FS.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("creating global storage: %w", err)
	}

	return &store{dir: dir, fs: p.FS, logger: p.Logger}, nil
}

func (s *store) Dir() string {
	return s.dir
}

func (s *store) path() string {
	return filepath.Join(s.dir, _stateFileName)
}

func (s *store) read() ([]byte, error) {
	exists, err := s.fs.FileExists(s.path())
	if err != nil {
		return nil, err
	}
	if !exists {
		return []byte("{}"), nil
	}

	data, err := s.fs.ReadFile(s.path())
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		s.logger.Warnw("discarding corrupt state file", "path", s.path())
		return []byte("{}"), nil
	}
	return data, nil
}

func (s *store) write(data []byte) error {
	tmp, err := s.fs.TempFile(s.dir, _stateFileName+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(name)
		return err
	}
	return s.fs.Rename(name, s.path())
}

func (s *store) Get(ctx context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return false, fmt.Errorf("reading state: %w", err)
	}

	res := gjson.GetBytes(data, escapeKey(key))
	if !res.Exists() || res.Type == gjson.Null {
		return false, nil
	}
	if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
		return false, fmt.Errorf("decoding state key %q: %w", key, err)
	}
	return true, nil
}

func (s *store) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return fmt.Errorf("reading state: %w", err)
	}

	data, err = sjson.SetBytes(data, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("encoding state key %q: %w", key, err)
	}
	if err := s.write(data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	s.logger.Debugw("state updated", "key", key)
	return nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return fmt.Errorf("reading state: %w", err)
	}
	if !gjson.GetBytes(data, escapeKey(key)).Exists() {
		return nil
	}

	data, err = sjson.DeleteBytes(data, escapeKey(key))
	if err != nil {
		return fmt.Errorf("deleting state key %q: %w", key, err)
	}
	if err := s.write(data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// escapeKey makes key a single path component for gjson and sjson.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '\\':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}
