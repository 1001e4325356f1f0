package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/supabase-community/pgltd/src/pgltd/app"
	binaryfinder "github.com/supabase-community/pgltd/src/pgltd/controller/binary-finder"
	"github.com/supabase-community/pgltd/src/pgltd/controller/downloader"
	"github.com/supabase-community/pgltd/src/pgltd/controller/lifecycle"
	"github.com/supabase-community/pgltd/src/pgltd/controller/project"
	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func serveOptions() fx.Option {
	return fx.Options(
		app.Module,
		fx.Invoke(app.RegisterServe),
		fx.Invoke(registerRestartSignal),
	)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pgltd",
		Short:        "Locate, download and supervise pglt language servers",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCommand(),
		newFindCommand(),
		newDownloadCommand(),
		newReleasesCommand(),
		newResetCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a language server for every project until interrupted",
		Long: `Run a pglt language server for every workspace folder that has a configuration file,
plus a global one when no folder is open or when pglt.globalSession is set.

Settings and project configuration files are watched. Sending SIGHUP restarts every session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fx.New(serveOptions())
			if err := a.Err(); err != nil {
				return err
			}
			a.Run()
			return nil
		},
	}
}

// restartSignalParams are the dependencies of the SIGHUP handler.
type restartSignalParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Sessions  lifecycle.Controller
	Logger    *zap.SugaredLogger
}

func registerRestartSignal(p restartSignalParams) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			signal.Notify(signals, syscall.SIGHUP)
			go func() {
				for {
					select {
					case <-signals:
						p.Logger.Info("restart requested")
						p.Sessions.Restart(context.Background())
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			signal.Stop(signals)
			close(done)
			return nil
		},
	})
}

// runOnce builds the application, calls fn and shuts the application down again.
func runOnce(ctx context.Context, fn interface{}) error {
	a := fx.New(app.Module, fx.NopLogger, fx.Invoke(fn))
	if err := a.Err(); err != nil {
		return err
	}
	if err := a.Start(ctx); err != nil {
		return err
	}
	return a.Stop(ctx)
}

type findParams struct {
	fx.In

	Settings     settings.Settings
	Projects     project.Controller
	BinaryFinder binaryfinder.Controller
}

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "Print the binary each session would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return runOnce(ctx, func(p findParams) error {
				return find(ctx, out, p)
			})
		},
	}
}

func find(ctx context.Context, out io.Writer, p findParams) error {
	projects, err := p.Projects.Discover(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		bin, ok := p.BinaryFinder.FindLocally(ctx, &projects[i])
		printLocation(out, projects[i].Root, bin.String(), ok)
	}
	if entity.OperatingModeFor(p.Settings.WorkspaceFolders()) == entity.OperatingModeSingleFile || p.Settings.GlobalSession() {
		bin, ok := p.BinaryFinder.FindGlobally(ctx)
		printLocation(out, "global", bin.String(), ok)
	}
	return nil
}

func printLocation(out io.Writer, scope, bin string, ok bool) {
	if !ok {
		bin = "not found"
	}
	fmt.Fprintf(out, "%s\t%s\n", scope, bin)
}

type downloadParams struct {
	fx.In

	Settings   settings.Settings
	Downloader downloader.Controller
}

func newDownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download [version]",
		Short: "Download a release of the language server, the latest one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return runOnce(ctx, func(p downloadParams) error {
				version := ""
				if len(args) == 1 {
					version = args[0]
				}
				return download(ctx, out, p, version)
			})
		},
	}
}

func download(ctx context.Context, out io.Writer, p downloadParams, version string) error {
	if version == "" {
		releases, err := p.Downloader.ListReleases(ctx, p.Settings.AllowDownloadPrereleases())
		if err != nil {
			return err
		}
		if len(releases) == 0 {
			return errors.New("no releases available")
		}
		version = releases[0].TagName
	}

	bin, err := p.Downloader.Download(ctx, version)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\t%s\n", version, bin)
	return nil
}

func newReleasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "releases",
		Short: "List the releases available for download, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return runOnce(ctx, func(p downloadParams) error {
				return releases(ctx, out, p)
			})
		},
	}
}

func releases(ctx context.Context, out io.Writer, p downloadParams) error {
	list, err := p.Downloader.ListReleases(ctx, p.Settings.AllowDownloadPrereleases())
	if err != nil {
		return err
	}
	current, err := p.Downloader.GetDownloadedVersion(ctx)
	if err != nil {
		return err
	}
	for _, r := range list {
		marker := ""
		if current != nil && current.Version == r.TagName {
			marker = "\t(installed)"
		}
		fmt.Fprintf(out, "%s\t%s%s\n", r.TagName, r.PublishedAt.Format("2006-01-02"), marker)
	}
	return nil
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the downloaded binary and check that every session starts again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return runOnce(ctx, func(sessions lifecycle.Controller) error {
				return reset(ctx, out, sessions)
			})
		},
	}
}

func reset(ctx context.Context, out io.Writer, sessions lifecycle.Controller) error {
	defer sessions.Stop(ctx)

	if err := sessions.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, sessions.State())
	return sessions.LastError()
}
