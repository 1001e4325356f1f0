// Package configwatcher reacts to changes of the settings file and of project configuration files.
package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/supabase-community/pgltd/src/pgltd/controller/lifecycle"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"github.com/supabase-community/pgltd/src/pgltd/repository/session"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_configKeyLifecycle = "lifecycle"

	_defaultDebounce = 500 * time.Millisecond
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Controller watches configuration files while the daemon runs.
// A settings change reloads the settings and restarts every session.
// A project configuration change is forwarded to the sessions of that project.
type Controller interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Params are the dependencies required to create the Controller.
type Params struct {
	fx.In

	Config    config.Provider
	Settings  settings.Settings
	Lifecycle lifecycle.Controller
	Sessions  session.Repository
	Logger    *zap.SugaredLogger
}

// Config tunes the watcher.
type Config struct {
	DebounceMillis int `yaml:"debounceMillis"`
}

type controller struct {
	settings  settings.Settings
	lifecycle lifecycle.Controller
	sessions  session.Repository
	logger    *zap.SugaredLogger
	delay     time.Duration

	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	watched     map[string]struct{}
	unsubscribe func()
	cancel      context.CancelFunc
	wg          sync.WaitGroup

	restartDebounced func(f func())
	notifyDebounced  func(f func())
}

// New creates a watcher that does nothing until started.
func New(p Params) (Controller, error) {
	var cfg Config
	if err := p.Config.Get(_configKeyLifecycle).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyLifecycle, err)
	}

	delay := _defaultDebounce
	if cfg.DebounceMillis > 0 {
		delay = time.Duration(cfg.DebounceMillis) * time.Millisecond
	}

	return &controller{
		settings:         p.Settings,
		lifecycle:        p.Lifecycle,
		sessions:         p.Sessions,
		logger:           p.Logger,
		delay:            delay,
		restartDebounced: debounce.New(delay),
		notifyDebounced:  debounce.New(delay),
	}, nil
}

// Start begins watching. The watched directories follow the sessions after every start.
func (c *controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	c.watcher = watcher
	c.watched = make(map[string]struct{})
	c.cancel = cancel
	c.refreshLocked(ctx)

	c.unsubscribe = c.lifecycle.Subscribe(func(_, next entity.LifecycleState) {
		if next == entity.StateStarted {
			c.refresh(runCtx)
		}
	})

	c.wg.Add(1)
	go c.handleChanges(runCtx, watcher)
	return nil
}

// Stop ends watching and drops any pending reaction.
func (c *controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.watcher == nil {
		c.mu.Unlock()
		return nil
	}
	watcher, cancel, unsubscribe := c.watcher, c.cancel, c.unsubscribe
	c.watcher, c.cancel, c.unsubscribe = nil, nil, nil
	c.mu.Unlock()

	unsubscribe()
	cancel()
	err := watcher.Close()
	c.wg.Wait()

	// Drop pending callbacks.
	c.restartDebounced(func() {})
	c.notifyDebounced(func() {})

	if err != nil {
		return fmt.Errorf("closing config watcher: %w", err)
	}
	return nil
}

func (c *controller) refresh(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		c.refreshLocked(ctx)
	}
}

// refreshLocked adds the directories of the settings file and of every project configuration file.
// Directories are watched instead of files so that editors replacing files atomically are noticed.
func (c *controller) refreshLocked(ctx context.Context) {
	dirs := []string{filepath.Dir(c.settings.Path())}
	for _, s := range c.sessions.ProjectSessions(ctx) {
		if p := s.Project(); p != nil && p.ConfigPath != "" {
			dirs = append(dirs, filepath.Dir(p.ConfigPath))
		}
	}

	var err error
	for _, dir := range dirs {
		if _, ok := c.watched[dir]; ok {
			continue
		}
		if addErr := c.watcher.Add(dir); addErr != nil {
			err = multierr.Append(err, fmt.Errorf("watching %s: %w", dir, addErr))
			continue
		}
		c.watched[dir] = struct{}{}
	}
	if err != nil {
		c.logger.Warnw("watching configuration directories", "error", err)
	}
}

func (c *controller) handleChanges(ctx context.Context, watcher *fsnotify.Watcher) {
	defer c.wg.Done()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			c.handleEvent(ctx, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.Warnw("failure in config watcher", "error", err)
		case <-ctx.Done():
			return
		}
	}
}

func (c *controller) handleEvent(ctx context.Context, event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	if name == filepath.Clean(c.settings.Path()) {
		c.logger.Infow("settings changed", "path", name)
		c.restartDebounced(func() { c.reloadAndRestart(ctx) })
		return
	}

	for _, s := range c.sessions.ProjectSessions(ctx) {
		if p := s.Project(); p != nil && filepath.Clean(p.ConfigPath) == name {
			c.logger.Infow("project configuration changed", "path", name)
			c.notifyDebounced(func() { c.notifySessions(ctx, name) })
			return
		}
	}
}

func (c *controller) reloadAndRestart(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := c.settings.Reload(); err != nil {
		c.logger.Errorw("reloading settings", "error", err)
		return
	}
	c.lifecycle.Restart(ctx)
}

// notifySessions forwards a configuration change to every session reading the file.
func (c *controller) notifySessions(ctx context.Context, configPath string) {
	if ctx.Err() != nil {
		return
	}

	var err error
	for _, s := range c.sessions.ProjectSessions(ctx) {
		p := s.Project()
		if p == nil || filepath.Clean(p.ConfigPath) != configPath {
			continue
		}
		if notifyErr := s.NotifyConfigurationChange(ctx); notifyErr != nil {
			err = multierr.Append(err, fmt.Errorf("session %s: %w", s.ID(), notifyErr))
		}
	}
	if err != nil {
		c.logger.Warnw("notifying configuration change", "error", err)
	}
}
