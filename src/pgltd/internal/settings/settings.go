// Package settings reads the editor-facing settings that drive binary resolution and session creation.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeySettingsPath = "settings.path"
	_defaultNodePath       = "node"
	_defaultConfigFile     = "pglt.toml"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Settings is a read-only view of the settings store with explicit reloads.
type Settings interface {
	// Path returns the location of the settings file.
	Path() string
	// Reload re-reads the settings file.
	Reload() error

	WorkspaceFolders() []entity.WorkspaceFolder
	// BinaryPath returns the declared binary path, preferring the folder override when folder is non-nil.
	BinaryPath(folder *entity.WorkspaceFolder) string
	// ConfigFile returns the configured project config file name, or "" when unset.
	ConfigFile(folder *entity.WorkspaceFolder) string
	EnabledForFolder(folder entity.WorkspaceFolder) bool
	EnabledGlobally() bool
	AllowDownloadPrereleases() bool
	GlobalSession() bool
	NodePath() string
}

// Params are the dependencies required to create Settings.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

type scopedSettings struct {
	Enabled    *bool  `yaml:"enabled"`
	ConfigFile string `yaml:"configFile"`
	Lsp        struct {
		Bin string `yaml:"bin"`
	} `yaml:"lsp"`
}

type pgltSettings struct {
	Enabled                  *bool  `yaml:"enabled"`
	ConfigFile               string `yaml:"configFile"`
	AllowDownloadPrereleases bool   `yaml:"allowDownloadPrereleases"`
	GlobalSession            bool   `yaml:"globalSession"`
	NodePath                 string `yaml:"nodePath"`
	Lsp                      struct {
		Bin string `yaml:"bin"`
	} `yaml:"lsp"`
	Folders map[string]scopedSettings `yaml:"folders"`
}

type snapshot struct {
	Workspace struct {
		Folders []entity.WorkspaceFolder `yaml:"folders"`
	} `yaml:"workspace"`
	Pglt pgltSettings `yaml:"pglt"`
}

type settingsImpl struct {
	path   string
	logger *zap.SugaredLogger

	mu      sync.RWMutex
	current snapshot
}

// New reads the settings file named by the daemon configuration.
func New(p Params) (Settings, error) {
	var path string
	if err := p.Config.Get(_configKeySettingsPath).Populate(&path); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySettingsPath, err)
	}
	if path == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeySettingsPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving settings path: %w", err)
	}

	s := &settingsImpl{path: abs, logger: p.Logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *settingsImpl) Path() string {
	return s.path
}

// Reload re-reads the settings file. A missing file yields default settings.
func (s *settingsImpl) Reload() error {
	next, err := load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.logger.Debugw("settings loaded", "path", s.path, "folders", len(next.Workspace.Folders))
	return nil
}

func load(path string) (snapshot, error) {
	var snap snapshot
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return snap, nil
	}

	provider, err := config.NewYAML(config.File(path), config.Expand(os.LookupEnv))
	if err != nil {
		return snap, fmt.Errorf("loading settings: %w", err)
	}
	if err := provider.Get(config.Root).Populate(&snap); err != nil {
		return snap, fmt.Errorf("parsing settings: %w", err)
	}

	// Relative folder paths are relative to the settings file.
	base := filepath.Dir(path)
	for i, f := range snap.Workspace.Folders {
		if f.Path != "" && !filepath.IsAbs(f.Path) {
			snap.Workspace.Folders[i].Path = filepath.Join(base, f.Path)
		}
		if f.Name == "" {
			snap.Workspace.Folders[i].Name = filepath.Base(snap.Workspace.Folders[i].Path)
		}
	}
	return snap, nil
}

func (s *settingsImpl) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *settingsImpl) WorkspaceFolders() []entity.WorkspaceFolder {
	folders := s.snapshot().Workspace.Folders
	out := make([]entity.WorkspaceFolder, len(folders))
	copy(out, folders)
	return out
}

func (s *settingsImpl) folderSettings(folder *entity.WorkspaceFolder) (scopedSettings, bool) {
	if folder == nil {
		return scopedSettings{}, false
	}
	scoped, ok := s.snapshot().Pglt.Folders[folder.Name]
	return scoped, ok
}

func (s *settingsImpl) BinaryPath(folder *entity.WorkspaceFolder) string {
	if scoped, ok := s.folderSettings(folder); ok && scoped.Lsp.Bin != "" {
		return scoped.Lsp.Bin
	}
	return s.snapshot().Pglt.Lsp.Bin
}

func (s *settingsImpl) ConfigFile(folder *entity.WorkspaceFolder) string {
	if scoped, ok := s.folderSettings(folder); ok && scoped.ConfigFile != "" {
		return scoped.ConfigFile
	}
	return s.snapshot().Pglt.ConfigFile
}

// EnabledForFolder falls back to the global value, then to the default (enabled).
func (s *settingsImpl) EnabledForFolder(folder entity.WorkspaceFolder) bool {
	if scoped, ok := s.folderSettings(&folder); ok && scoped.Enabled != nil {
		return *scoped.Enabled
	}
	return s.EnabledGlobally()
}

func (s *settingsImpl) EnabledGlobally() bool {
	if enabled := s.snapshot().Pglt.Enabled; enabled != nil {
		return *enabled
	}
	return true
}

func (s *settingsImpl) AllowDownloadPrereleases() bool {
	return s.snapshot().Pglt.AllowDownloadPrereleases
}

func (s *settingsImpl) GlobalSession() bool {
	return s.snapshot().Pglt.GlobalSession
}

func (s *settingsImpl) NodePath() string {
	if p := s.snapshot().Pglt.NodePath; p != "" {
		return p
	}
	return _defaultNodePath
}

// DefaultConfigFile is the project config file name used when none is configured.
func DefaultConfigFile() string {
	return _defaultConfigFile
}
