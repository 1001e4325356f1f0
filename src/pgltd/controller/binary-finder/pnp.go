package binaryfinder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/platform"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var _pnpExtensions = []string{"cjs", "js"}

// _pnpResolveScript loads a Plug'n'Play runtime and resolves the host package manifest from the
// project root, then the platform binary from that manifest. It prints {"host": ..., "bin": ...}.
const _pnpResolveScript = `
const [pnpFile, hostRequest, root, binRequest] = process.argv.slice(1);
const api = require(pnpFile);
const issuer = root.endsWith(require("path").sep) ? root : root + require("path").sep;
const host = api.resolveRequest(hostRequest, issuer);
const bin = host ? api.resolveRequest(binRequest, host) : null;
process.stdout.write(JSON.stringify({ host, bin }));
`

// pnpStrategy resolves the binary through a Yarn Plug'n'Play runtime.
type pnpStrategy struct {
	fs       fs.PgltFS
	executor executor.Executor
	settings settings.Settings
	platform platform.Platform
	logger   *zap.SugaredLogger
}

func (s *pnpStrategy) Name() string { return _strategyPnP }

func (s *pnpStrategy) Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error) {
	if scope.Root == "" {
		s.logger.Debugw("no project root, skipping Plug'n'Play lookup")
		return "", nil
	}

	platformPkg := s.platform.NodePackageName()
	if platformPkg == "" {
		return "", nil
	}

	var lastErr error
	for _, ext := range _pnpExtensions {
		pnpFile := filepath.Join(scope.Root, ".pnp."+ext)
		exists, err := s.fs.FileExists(pnpFile)
		if err != nil {
			lastErr = err
			continue
		}
		if !exists {
			s.logger.Debugw("no Plug'n'Play file", "ext", ext)
			continue
		}

		bin, err := s.resolve(ctx, pnpFile, scope.Root, platformPkg)
		if err != nil {
			lastErr = err
			continue
		}
		if bin != "" {
			return bin, nil
		}
	}

	s.logger.Debugw("binary not found via Plug'n'Play", "root", scope.Root)
	return "", lastErr
}

func (s *pnpStrategy) resolve(ctx context.Context, pnpFile, root, platformPkg string) (entity.BinaryLocation, error) {
	hostRequest := platform.NpmPackageName + "/" + _packageManifest
	binRequest := platformPkg + "/" + s.platform.BinaryName()

	cmd := exec.CommandContext(ctx, s.settings.NodePath(), "-e", _pnpResolveScript, pnpFile, hostRequest, root, binRequest)
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := s.executor.RunCommand(cmd, nil); err != nil {
		return "", fmt.Errorf("running Plug'n'Play resolution for %s: %w: %s", pnpFile, err, strings.TrimSpace(stderr.String()))
	}

	out := stdout.String()
	if !gjson.Valid(out) {
		return "", fmt.Errorf("unexpected Plug'n'Play output for %s: %q", pnpFile, out)
	}

	res := gjson.Parse(out)
	if res.Get("host").String() == "" {
		s.logger.Debugw("package not found via Plug'n'Play", "package", platform.NpmPackageName, "pnp", pnpFile)
		return "", nil
	}
	return entity.BinaryLocation(res.Get("bin").String()), nil
}
