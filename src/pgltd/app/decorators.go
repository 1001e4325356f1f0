package app

import (
	"fmt"
	"path/filepath"

	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyStatusFile = "statusFilePath"

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Cfg config.Provider
	FS  fs.PgltFS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	if err := ensureLogFolder(p.Cfg, p.FS); err != nil {
		return nil, fmt.Errorf("ensuring log folder: %w", err)
	}
	if err := ensureStatusFolder(p.Cfg, p.FS); err != nil {
		return nil, fmt.Errorf("ensuring status file folder: %w", err)
	}
	return p.Cfg, nil
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider, fs fs.PgltFS) error {
	var c zap.Config
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return fmt.Errorf("loading logging config: %w", err)
	}

	for _, outputPath := range c.OutputPaths {
		if outputPath == "stdout" || outputPath == "stderr" {
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(outputPath)); err != nil {
			return fmt.Errorf("creating logging directory: %w", err)
		}
	}
	return nil
}

func ensureStatusFolder(cfg config.Provider, fs fs.PgltFS) error {
	var statusFile string
	if err := cfg.Get(_configKeyStatusFile).Populate(&statusFile); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyStatusFile, err)
	}
	if statusFile == "" {
		return nil
	}
	return fs.MkdirAll(filepath.Dir(statusFile))
}
