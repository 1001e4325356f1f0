package outputwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/statusfile"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"
	_logsDirName  = "pgltd"
)

// Params define the dependencies for Open.
type Params struct {
	FS         fs.PgltFS
	StatusFile statusfile.StatusFile
	Logger     *zap.SugaredLogger
}

// Writer receives human readable output of a language server process.
// Each line is written to a dedicated file for the user to tail and mirrored to the daemon logger.
type Writer struct {
	p       Params
	name    string
	file    *os.File
	fileLog *zap.SugaredLogger
}

// Open creates a Writer backed by a temporary file under the user's temp directory.
// The file path is stored in the status file so the editor can tail it.
func Open(p Params, name string) (*Writer, error) {
	logsDirPath := filepath.Join(os.TempDir(), _logsDirName)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, name+"-*.log")
	if err != nil {
		return nil, err
	}

	if err := p.StatusFile.UpdateField(outputKey(name), logFile.Name()); err != nil {
		p.Logger.Warnw("recording output file", "name", name, "error", err)
	}

	// Write via a logger for formatting, timestamp, and buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)

	return &Writer{
		p:       p,
		name:    name,
		file:    logFile,
		fileLog: zap.New(core).Sugar(),
	}, nil
}

// Path returns the location of the backing file.
func (w *Writer) Path() string {
	return w.file.Name()
}

// Write implements the io.Writer interface by sending each non-empty line to the file and the daemon logger.
func (w *Writer) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		w.fileLog.Info(line)
		w.p.Logger.Debugw(line, "output", w.name)
	}

	return len(p), nil
}

// Close flushes and removes the backing file.
func (w *Writer) Close() error {
	_ = w.fileLog.Sync()
	err := multierr.Append(w.file.Close(), w.p.FS.Remove(w.file.Name()))
	if rmErr := w.p.StatusFile.RemoveField(outputKey(w.name)); rmErr != nil {
		err = multierr.Append(err, rmErr)
	}
	return err
}

func outputKey(name string) string {
	return fmt.Sprintf(_fmtOutputKey, name)
}
