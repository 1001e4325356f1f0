// Package binaryfinder locates the language server binary through ordered chains of lookup strategies.
package binaryfinder

import (
	"context"
	"os"

	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/platform"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_resolutionCounter = "binary_resolution"
	_strategyTag       = "strategy"
	_scopeTag          = "scope"
	_notFound          = "none"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Controller resolves binaries for the whole editor or for a single project.
type Controller interface {
	// FindGlobally runs the chain that needs no project root.
	FindGlobally(ctx context.Context) (entity.BinaryLocation, bool)
	// FindLocally runs the chain scoped to the project.
	FindLocally(ctx context.Context, project *entity.Project) (entity.BinaryLocation, bool)
}

// Params are the dependencies required to create the Controller.
type Params struct {
	fx.In

	Settings   settings.Settings
	Downloader downloader.Controller
	Executor   executor.Executor
	FS         fs.PgltFS
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
}

type controller struct {
	global Chain
	local  Chain
	stats  tally.Scope
	logger *zap.SugaredLogger
}

// New builds the global and local chains.
func New(p Params) Controller {
	return newController(p, platform.Current(), os.LookupEnv)
}

func newController(p Params, plat platform.Platform, lookupEnv func(string) (string, bool)) *controller {
	c := &controller{
		stats:  p.Stats,
		logger: p.Logger,
	}

	setting := &settingStrategy{settings: p.Settings}
	nodeModules := &nodeModulesStrategy{fs: p.FS, platform: plat, lookupEnv: lookupEnv, logger: p.Logger}
	pnp := &pnpStrategy{fs: p.FS, executor: p.Executor, settings: p.Settings, platform: plat, logger: p.Logger}
	path := &pathStrategy{fs: p.FS, binaryName: plat.BinaryName(), lookupEnv: lookupEnv, logger: p.Logger}
	download := &downloadStrategy{downloader: p.Downloader}

	c.global = Chain{
		{Strategy: setting, OnSuccess: c.found("found binary in settings (pglt.lsp.bin)")},
		{Strategy: path, OnSuccess: c.found("found binary in PATH")},
		{Strategy: download, OnSuccess: c.found("found downloaded binary")},
	}
	c.local = Chain{
		{Strategy: setting, OnSuccess: c.found("found binary in settings (pglt.lsp.bin)")},
		{Strategy: nodeModules, OnSuccess: c.found("found binary in node modules")},
		{Strategy: pnp, OnSuccess: c.found("found binary in Yarn Plug'n'Play")},
		{Strategy: path, OnSuccess: c.found("found binary in PATH")},
		{
			Strategy:  download,
			OnSuccess: c.found("found downloaded binary"),
			// Installing through a package manager is preferred where one is in use.
			Condition: noPackageManifest(p.FS),
		},
	}
	return c
}

func (c *controller) found(msg string) func(entity.BinaryLocation) {
	return func(loc entity.BinaryLocation) {
		c.logger.Debugw(msg, "path", loc)
	}
}

func (c *controller) FindGlobally(ctx context.Context) (entity.BinaryLocation, bool) {
	loc, strategy, ok := c.global.Resolve(ctx, Scope{}, c.logger)
	c.record("global", strategy)
	if !ok {
		c.logger.Debugw("unable to find binary globally")
	}
	return loc, ok
}

func (c *controller) FindLocally(ctx context.Context, project *entity.Project) (entity.BinaryLocation, bool) {
	scope := Scope{Root: project.Root, Folder: project.Folder}
	loc, strategy, ok := c.local.Resolve(ctx, scope, c.logger)
	c.record("local", strategy)
	if !ok {
		c.logger.Debugw("unable to find binary locally", "root", project.Root)
	}
	return loc, ok
}

func (c *controller) record(scope string, strategy Strategy) {
	name := _notFound
	if strategy != nil {
		name = strategy.Name()
	}
	c.stats.Tagged(map[string]string{_scopeTag: scope, _strategyTag: name}).Counter(_resolutionCounter).Inc(1)
}
