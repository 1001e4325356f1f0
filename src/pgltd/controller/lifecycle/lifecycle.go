// Package lifecycle supervises the language server sessions of the editor.
package lifecycle

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	binaryfinder "github.com/supabase-community/pgltd/src/pgltd/controller/binary-finder"
	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader"
	"github.com/supabase-community/pgltd/src/pgltd/controller/project"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	pgltserver "github.com/supabase-community/pgltd/src/pgltd/gateway/pglt-server"
	"github.com/supabase-community/pgltd/src/pgltd/internal/clock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"github.com/supabase-community/pgltd/src/pgltd/internal/statusfile"
	"github.com/supabase-community/pgltd/src/pgltd/repository/session"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_settleDelay = time.Second

	_transitionCounter = "lifecycle_transition"
	_stateTag          = "state"

	_statusKeyState   = "state"
	_statusKeyIcon    = "icon"
	_statusKeyTooltip = "tooltip"
	_statusKeyVersion = "version"
	_statusKeyHidden  = "hidden"
	_statusKeyMode    = "operatingMode"

	_opStart = "start"
	_opReset = "reset"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Observer is notified of every state transition.
type Observer func(old, new entity.LifecycleState)

// Controller drives every session through start, stop and restart.
// Operations are serialized; a failing start leaves the controller in the error state instead of returning.
type Controller interface {
	Start(ctx context.Context)
	// Stop destroys every session. Stopping when nothing runs is a no-op apart from the state change.
	Stop(ctx context.Context)
	// Restart is ignored while another restart is running or waiting to run.
	Restart(ctx context.Context)
	// Reset stops every session, removes the downloaded binary and starts again.
	Reset(ctx context.Context) error
	State() entity.LifecycleState
	// LastError returns the failure that moved the controller into the error state, if any.
	LastError() error
	// Subscribe registers an observer and returns a function removing it.
	Subscribe(o Observer) (unsubscribe func())
}

// Params are the dependencies required to create the Controller.
type Params struct {
	fx.In

	Settings     settings.Settings
	Projects     project.Controller
	BinaryFinder binaryfinder.Controller
	Downloader   downloader.Controller
	Server       pgltserver.Gateway
	Sessions     session.Repository
	StatusFile   statusfile.StatusFile
	Clock        clock.Clock
	Stats        tally.Scope
	Logger       *zap.SugaredLogger
}

type subscription struct {
	id       int
	observer Observer
}

type controller struct {
	settings   settings.Settings
	projects   project.Controller
	finder     binaryfinder.Controller
	downloader downloader.Controller
	server     pgltserver.Gateway
	sessions   session.Repository
	statusFile statusfile.StatusFile
	clock      clock.Clock
	stats      tally.Scope
	logger     *zap.SugaredLogger

	opMu           sync.Mutex
	restartPending atomic.Bool

	stateMu       sync.Mutex
	state         entity.LifecycleState
	lastErr       error
	subscriptions []subscription
	nextID        int
}

// New creates a Controller in the initializing state.
func New(p Params) Controller {
	return &controller{
		settings:   p.Settings,
		projects:   p.Projects,
		finder:     p.BinaryFinder,
		downloader: p.Downloader,
		server:     p.Server,
		sessions:   p.Sessions,
		statusFile: p.StatusFile,
		clock:      p.Clock,
		stats:      p.Stats,
		logger:     p.Logger,
		state:      entity.StateInitializing,
	}
}

func (c *controller) Start(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State() == entity.StateStarted {
		c.logger.Debug("sessions already started")
		return
	}

	c.setState(entity.StateStarting, nil)
	if err := c.start(ctx); err != nil {
		c.fail(_opStart, err)
		return
	}
	c.setState(entity.StateStarted, nil)
}

func (c *controller) Stop(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setState(entity.StateStopping, nil)
	c.stop(ctx)
	c.setState(entity.StateStopped, nil)
}

func (c *controller) Restart(ctx context.Context) {
	if !c.restartPending.CompareAndSwap(false, true) {
		c.logger.Debug("restart already in progress")
		return
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()
	defer c.restartPending.Store(false)

	c.setState(entity.StateRestarting, nil)
	c.stop(ctx)
	if err := c.start(ctx); err != nil {
		c.fail(_opStart, err)
		return
	}
	c.setState(entity.StateStarted, nil)
}

func (c *controller) Reset(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setState(entity.StateStopping, nil)
	c.stop(ctx)
	c.setState(entity.StateStopped, nil)

	if err := c.downloader.Clear(ctx); err != nil {
		c.fail(_opReset, err)
		return fmt.Errorf("clearing downloaded binary: %w", err)
	}
	c.logger.Info("downloaded binary removed")

	c.setState(entity.StateStarting, nil)
	if err := c.start(ctx); err != nil {
		c.fail(_opStart, err)
		return nil
	}
	c.setState(entity.StateStarted, nil)
	return nil
}

func (c *controller) State() entity.LifecycleState {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

func (c *controller) LastError() error {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.lastErr
}

func (c *controller) Subscribe(o Observer) func() {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	id := c.nextID
	c.nextID++
	c.subscriptions = append(c.subscriptions, subscription{id: id, observer: o})

	return func() {
		c.stateMu.Lock()
		defer c.stateMu.Unlock()
		for i, s := range c.subscriptions {
			if s.id == id {
				c.subscriptions = append(c.subscriptions[:i:i], c.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// start creates the project sessions followed by the global session.
// Sessions still registered from an earlier partial start are kept.
func (c *controller) start(ctx context.Context) error {
	projects, err := c.projects.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discovering projects: %w", err)
	}

	mode := entity.OperatingModeFor(c.settings.WorkspaceFolders())
	c.logger.Infow("starting sessions", "operatingMode", mode, "projects", len(projects))

	for i := range projects {
		p := &projects[i]
		if c.sessions.GetByProject(ctx, p.Key()) != nil {
			c.logger.Debugw("project session already running", "root", p.Root)
			continue
		}
		bin, ok := c.finder.FindLocally(ctx, p)
		if !ok {
			c.logger.Infow("no binary found for project, skipping", "root", p.Root)
			continue
		}
		if err := c.launch(ctx, bin, p); err != nil {
			return err
		}
	}

	if !c.needsGlobalSession(mode) {
		return nil
	}
	if c.sessions.Global(ctx) != nil {
		c.logger.Debug("global session already running")
		return nil
	}
	bin, ok := c.finder.FindGlobally(ctx)
	if !ok {
		c.logger.Warn("no binary found for the global session")
		return nil
	}
	return c.launch(ctx, bin, nil)
}

func (c *controller) needsGlobalSession(mode entity.OperatingMode) bool {
	if !c.settings.EnabledGlobally() {
		return false
	}
	return mode == entity.OperatingModeSingleFile || c.settings.GlobalSession()
}

func (c *controller) launch(ctx context.Context, bin entity.BinaryLocation, p *entity.Project) error {
	s, err := c.server.CreateSession(ctx, bin, p)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("starting session %s: %w", s.ID(), err)
	}
	if err := c.sessions.Set(ctx, s); err != nil {
		return multierr.Append(fmt.Errorf("registering session %s: %w", s.ID(), err), s.Stop(ctx))
	}
	c.logger.Infow("session created", "session", s.ID().String(), "bin", bin, "global", p == nil)
	return nil
}

// stop destroys the global session and then the project sessions in registration order.
// Every session is attempted and the registry always ends up empty.
func (c *controller) stop(ctx context.Context) {
	if c.sessions.SessionCount(ctx) == 0 {
		return
	}

	// Lets in-flight configuration notifications land before the sessions go away.
	if err := c.clock.Sleep(ctx, _settleDelay); err != nil {
		c.logger.Debugw("settle delay interrupted", "error", err)
	}

	var err error
	if g := c.sessions.Global(ctx); g != nil {
		err = multierr.Append(err, c.destroy(ctx, g))
	}
	for _, s := range c.sessions.ProjectSessions(ctx) {
		err = multierr.Append(err, c.destroy(ctx, s))
	}
	c.sessions.Clear(ctx)

	if err != nil {
		c.logger.Errorw("destroying sessions", "error", err)
	}
}

func (c *controller) destroy(ctx context.Context, s entity.Session) error {
	if err := s.Stop(ctx); err != nil {
		return fmt.Errorf("stopping session %s: %w", s.ID(), err)
	}
	return nil
}

func (c *controller) fail(op string, err error) {
	fault := &errors.LifecycleFault{Op: op, Err: err}
	c.logger.Errorw("lifecycle operation failed", "op", op, "error", err)
	c.setState(entity.StateError, fault)
}

func (c *controller) setState(next entity.LifecycleState, fault error) {
	c.stateMu.Lock()
	prev := c.state
	c.state = next
	if next == entity.StateError {
		c.lastErr = fault
	} else if next == entity.StateStarted {
		c.lastErr = nil
	}
	observers := make([]Observer, 0, len(c.subscriptions))
	for _, s := range c.subscriptions {
		observers = append(observers, s.observer)
	}
	c.stateMu.Unlock()

	c.stats.Tagged(map[string]string{_stateTag: next.String()}).Counter(_transitionCounter).Inc(1)
	c.logger.Debugw("lifecycle state changed", "from", prev.String(), "to", next.String())
	c.publishStatus(next)

	for _, o := range observers {
		o(prev, next)
	}
}

func (c *controller) publishStatus(state entity.LifecycleState) {
	fields := map[string]string{
		_statusKeyState:   state.String(),
		_statusKeyIcon:    state.Icon(),
		_statusKeyTooltip: state.Tooltip(),
		_statusKeyVersion: c.serverVersion(),
		_statusKeyHidden:  strconv.FormatBool(!c.settings.EnabledGlobally()),
		_statusKeyMode:    string(entity.OperatingModeFor(c.settings.WorkspaceFolders())),
	}
	if err := c.statusFile.UpdateFields(fields); err != nil {
		c.logger.Warnw("updating status file", "error", err)
	}
}

// serverVersion reports the version of the global session, or of the first project session.
func (c *controller) serverVersion() string {
	ctx := context.Background()
	if g := c.sessions.Global(ctx); g != nil {
		return g.ServerVersion()
	}
	if sessions := c.sessions.ProjectSessions(ctx); len(sessions) > 0 {
		return sessions[0].ServerVersion()
	}
	return ""
}
