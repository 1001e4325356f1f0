// Package project discovers the projects opened in the workspace.
package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Controller finds projects: workspace folders that carry a pglt configuration file.
type Controller interface {
	// Discover returns a project for every enabled workspace folder with a configuration file, in folder order.
	Discover(ctx context.Context) ([]entity.Project, error)
	// DiscoverFolder returns the project rooted at folder, or nil when it has no configuration file.
	DiscoverFolder(ctx context.Context, folder entity.WorkspaceFolder) (*entity.Project, error)
}

// Params are the dependencies required to create the Controller.
type Params struct {
	fx.In

	Settings settings.Settings
	FS       fs.PgltFS
	Logger   *zap.SugaredLogger
}

type controller struct {
	settings settings.Settings
	fs       fs.PgltFS
	logger   *zap.SugaredLogger
}

// New creates a project discovery controller.
func New(p Params) Controller {
	return &controller{
		settings: p.Settings,
		fs:       p.FS,
		logger:   p.Logger,
	}
}

func (c *controller) Discover(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	for _, folder := range c.settings.WorkspaceFolders() {
		if !c.settings.EnabledForFolder(folder) {
			c.logger.Infow("pglt is disabled for folder", "folder", folder.Name)
			continue
		}

		p, err := c.DiscoverFolder(ctx, folder)
		if err != nil {
			return nil, err
		}
		if p != nil {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (c *controller) DiscoverFolder(ctx context.Context, folder entity.WorkspaceFolder) (*entity.Project, error) {
	configFile := c.settings.ConfigFile(&folder)
	if configFile != "" {
		c.logger.Infow("using configured config file", "folder", folder.Name, "path", configFile)
	} else {
		configFile = settings.DefaultConfigFile()
	}

	configPath := configFile
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(folder.Path, configFile)
	}

	exists, err := c.fs.FileExists(configPath)
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", configPath, err)
	}
	if !exists {
		c.logger.Infow("config file does not exist", "folder", folder.Name, "path", configPath)
		return nil, nil
	}

	c.logger.Infow("found config file", "folder", folder.Name, "path", configPath)
	f := folder
	return &entity.Project{
		Folder:     &f,
		Root:       folder.Path,
		ConfigPath: configPath,
	}, nil
}
