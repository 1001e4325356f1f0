package app

import (
	"context"
	"time"

	binaryfinder "github.com/supabase-community/pgltd/src/pgltd/controller/binary-finder"
	configwatcher "github.com/supabase-community/pgltd/src/pgltd/controller/config-watcher"
	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader"
	"github.com/supabase-community/pgltd/src/pgltd/controller/lifecycle"
	"github.com/supabase-community/pgltd/src/pgltd/controller/project"
	"github.com/supabase-community/pgltd/src/pgltd/gateway/github"
	pgltserver "github.com/supabase-community/pgltd/src/pgltd/gateway/pglt-server"
	"github.com/supabase-community/pgltd/src/pgltd/internal/clock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/core"
	"github.com/supabase-community/pgltd/src/pgltd/internal/executor"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"github.com/supabase-community/pgltd/src/pgltd/internal/statusfile"
	"github.com/supabase-community/pgltd/src/pgltd/repository/session"
	"github.com/supabase-community/pgltd/src/pgltd/repository/state"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the pgltd application module.
var Module = fx.Options(
	github.Module,     // outbounds
	pgltserver.Module, // language server processes
	session.Module,
	state.Module,
	binaryfinder.Module,
	configwatcher.Module,
	downloader.Module,
	lifecycle.Module,
	project.Module,
	clock.Module,
	executor.Module,
	fs.Module,
	settings.Module,
	statusfile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "pgltd",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateConfigProvider),
)

// ServeParams are the components driven by the daemon's lifecycle hooks.
type ServeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Sessions  lifecycle.Controller
	Watcher   configwatcher.Controller
}

// RegisterServe starts the sessions and the configuration watcher with the application and stops them with it.
func RegisterServe(p ServeParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Sessions outlive the start hook's deadline.
			p.Sessions.Start(context.WithoutCancel(ctx))
			return p.Watcher.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			err := p.Watcher.Stop(ctx)
			p.Sessions.Stop(ctx)
			return err
		},
	})
}
