// Package pgltserver runs pglt language server processes and talks to them over stdio.
package pgltserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/outputwriter"
	"github.com/supabase-community/pgltd/src/pgltd/internal/statusfile"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeySession = "session"

	_defaultStopTimeout = 5 * time.Second
	_clientName         = "pgltd"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Gateway creates sessions backed by language server processes.
type Gateway interface {
	// CreateSession prepares a session for the binary. A nil project creates the global session.
	// The session is not running until Start is called.
	CreateSession(ctx context.Context, bin entity.BinaryLocation, project *entity.Project) (entity.Session, error)
}

// Params are the dependencies required to create the Gateway.
type Params struct {
	fx.In

	Config     config.Provider
	Executor   executor.Executor
	FS         fs.PgltFS
	StatusFile statusfile.StatusFile
	Logger     *zap.SugaredLogger
}

// Config tunes the sessions.
type Config struct {
	StopTimeoutMillis int    `yaml:"stopTimeoutMillis"`
	Command           string `yaml:"command"`
}

type gateway struct {
	executor    executor.Executor
	output      outputwriter.Params
	logger      *zap.SugaredLogger
	stopTimeout time.Duration
	command     string
}

// New creates a Gateway.
func New(p Params) (Gateway, error) {
	var cfg Config
	if err := p.Config.Get(_configKeySession).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySession, err)
	}

	g := &gateway{
		executor: p.Executor,
		output: outputwriter.Params{
			FS:         p.FS,
			StatusFile: p.StatusFile,
			Logger:     p.Logger,
		},
		logger:      p.Logger,
		stopTimeout: _defaultStopTimeout,
		command:     _lspProxyCommand,
	}
	if cfg.StopTimeoutMillis > 0 {
		g.stopTimeout = time.Duration(cfg.StopTimeoutMillis) * time.Millisecond
	}
	if cfg.Command != "" {
		g.command = cfg.Command
	}
	return g, nil
}

func (g *gateway) CreateSession(ctx context.Context, bin entity.BinaryLocation, project *entity.Project) (entity.Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}

	var p *entity.Project
	if project != nil {
		copied := *project
		p = &copied
	}

	s := &session{
		id:          id,
		project:     p,
		bin:         bin,
		command:     g.command,
		executor:    g.executor,
		output:      g.output,
		stopTimeout: g.stopTimeout,
		logger:      g.logger.With("session", id.String()),
	}
	return s, nil
}
