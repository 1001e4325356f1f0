package pgltserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor"
	"github.com/supabase-community/pgltd/src/pgltd/internal/outputwriter"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/pkg/fakenet"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_lspProxyCommand = "lsp-proxy"
	_globalName      = "global"
)

var errNotRunning = errors.New("session is not running")

type session struct {
	id          uuid.UUID
	project     *entity.Project
	bin         entity.BinaryLocation
	command     string
	executor    executor.Executor
	output      outputwriter.Params
	stopTimeout time.Duration
	logger      *zap.SugaredLogger

	mu      sync.Mutex
	cmd     *exec.Cmd
	conn    jsonrpc2.Conn
	server  protocol.Server
	writer  *outputwriter.Writer
	exited  chan struct{}
	version string
}

func (s *session) ID() uuid.UUID {
	return s.id
}

// Project returns nil for the global session.
func (s *session) Project() *entity.Project {
	return s.project
}

func (s *session) ServerVersion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *session) name() string {
	if s.project == nil {
		return _globalName
	}
	if s.project.Folder != nil && s.project.Folder.Name != "" {
		return s.project.Folder.Name
	}
	return filepath.Base(s.project.Root)
}

// Start spawns the server and performs the initialize handshake.
func (s *session) Start(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return fmt.Errorf("session %s already started", s.id)
	}

	writer, err := outputwriter.Open(s.output, "pglt-"+s.name())
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}

	cmd := exec.Command(s.bin.String(), s.command)
	if s.project != nil {
		cmd.Dir = s.project.Root
	}
	cmd.Stderr = writer

	stdin, err := cmd.StdinPipe()
	if err != nil {
		writer.Close()
		return fmt.Errorf("creating stdin pipe: %w", err)
	}
	// The read end stays open after Wait so output written right before exit is still delivered.
	stdout, stdoutW, err := os.Pipe()
	if err != nil {
		writer.Close()
		stdin.Close()
		return fmt.Errorf("creating stdout pipe: %w", err)
	}
	cmd.Stdout = stdoutW

	err = s.executor.Start(cmd)
	stdoutW.Close()
	if err != nil {
		stdout.Close()
		writer.Close()
		return fmt.Errorf("starting %s: %w", s.bin, err)
	}

	exited := make(chan struct{})
	go func() {
		defer close(exited)
		if err := cmd.Wait(); err != nil {
			s.logger.Debugw("language server exited", "error", err)
		}
	}()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(fakenet.NewConn(s.name(), stdout, stdin)))
	conn.Go(context.Background(), s.handle)

	s.cmd, s.conn, s.writer, s.exited = cmd, conn, writer, exited
	s.server = protocol.ServerDispatcher(conn, s.logger.Desugar())

	defer func() {
		if err != nil {
			s.teardown(context.Background(), false)
		}
	}()

	result, err := s.server.Initialize(ctx, s.initializeParams())
	if err != nil {
		return fmt.Errorf("initializing language server: %w", err)
	}
	if result != nil && result.ServerInfo != nil {
		s.version = result.ServerInfo.Version
	}

	if err := s.server.Initialized(ctx, &protocol.InitializedParams{}); err != nil {
		return fmt.Errorf("sending initialized: %w", err)
	}

	s.logger.Infow("language server started", "bin", s.bin, "pid", cmd.Process.Pid, "version", s.version, "output", writer.Path())
	return nil
}

func (s *session) initializeParams() *protocol.InitializeParams {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		ClientInfo: &protocol.ClientInfo{
			Name: _clientName,
		},
	}
	if s.project != nil {
		root := uri.File(s.project.Root)
		params.RootURI = protocol.DocumentURI(root)
		params.RootPath = s.project.Root
		params.WorkspaceFolders = []protocol.WorkspaceFolder{{URI: string(root), Name: s.name()}}
	}
	return params
}

// handle answers requests and notifications sent by the server.
func (s *session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodWindowLogMessage, protocol.MethodWindowShowMessage:
		var params protocol.LogMessageParams
		if err := json.Unmarshal(req.Params(), &params); err == nil {
			s.logger.Infow("language server message", "message", params.Message, "type", params.Type.String())
		}
		return reply(ctx, nil, nil)
	case protocol.MethodWorkspaceConfiguration:
		var params protocol.ConfigurationParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		// Settings are read by the server from its configuration file.
		return reply(ctx, make([]interface{}, len(params.Items)), nil)
	case protocol.MethodClientRegisterCapability, protocol.MethodClientUnregisterCapability,
		protocol.MethodWorkDoneProgressCreate, protocol.MethodProgress,
		protocol.MethodTextDocumentPublishDiagnostics, protocol.MethodTelemetryEvent:
		return reply(ctx, nil, nil)
	default:
		s.logger.Debugw("unhandled language server request", "method", req.Method())
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (s *session) NotifyConfigurationChange(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return errNotRunning
	}
	if err := server.DidChangeConfiguration(ctx, &protocol.DidChangeConfigurationParams{}); err != nil {
		return fmt.Errorf("notifying configuration change: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully and kills it if it outlives the stop timeout.
// Stopping a session that is not running does nothing.
func (s *session) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return nil
	}
	return s.teardown(ctx, true)
}

func (s *session) teardown(ctx context.Context, graceful bool) error {
	var err error

	if graceful {
		shutdownCtx, cancel := context.WithTimeout(ctx, s.stopTimeout)
		if shutdownErr := s.server.Shutdown(shutdownCtx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutting down language server: %w", shutdownErr))
		} else if exitErr := s.server.Exit(shutdownCtx); exitErr != nil {
			err = multierr.Append(err, fmt.Errorf("sending exit: %w", exitErr))
		}
		cancel()
	}

	err = multierr.Append(err, s.waitOrKill(ctx, graceful))

	if closeErr := s.conn.Close(); closeErr != nil {
		s.logger.Debugw("closing connection", "error", closeErr)
	}
	err = multierr.Append(err, s.writer.Close())

	s.logger.Infow("language server stopped", "bin", s.bin)
	s.cmd, s.conn, s.server, s.writer = nil, nil, nil, nil
	return err
}

// waitOrKill waits for the process to exit and kills it if it is still alive afterwards.
func (s *session) waitOrKill(ctx context.Context, graceful bool) error {
	if graceful {
		timer := time.NewTimer(s.stopTimeout)
		defer timer.Stop()
		select {
		case <-s.exited:
			return nil
		case <-timer.C:
		case <-ctx.Done():
		}
	}

	pid := int32(s.cmd.Process.Pid)
	alive, err := process.PidExistsWithContext(context.Background(), pid)
	if err != nil {
		s.logger.Debugw("checking language server process", "pid", pid, "error", err)
		alive = true
	}
	if alive {
		s.logger.Warnw("killing language server", "pid", pid)
		if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("killing language server %d: %w", pid, err)
		}
	}
	<-s.exited
	return nil
}
