package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"batchcensor/internal/censor"
	"batchcensor/internal/config"
	"batchcensor/internal/fileutil"
	"batchcensor/internal/logging"
	"batchcensor/internal/reconcile"
)

type commandContext struct {
	settingsFlag  *string
	configFlags   *[]string
	configDirFlag *string
	rootFlag      *string
	outputFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	settingsOnce sync.Once
	settings     *config.Config
	settingsErr  error
}

func newCommandContext(settingsFlag *string, configFlags *[]string, configDirFlag, rootFlag, outputFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		settingsFlag:  settingsFlag,
		configFlags:   configFlags,
		configDirFlag: configDirFlag,
		rootFlag:      rootFlag,
		outputFlag:    outputFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureSettings() (*config.Config, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = cfg
	})
	return c.settings, c.settingsErr
}

// newLogger builds the logger from settings with flag overrides applied.
func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
		level = v
	}
	format := cfg.Logging.Format
	if v := strings.TrimSpace(*c.logFormatFlag); v != "" {
		format = v
	}
	logger, err := logging.New(logging.Options{Level: level, Format: format})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// configPaths resolves the censor documents to load: explicit --config
// values first, then every .yml beneath the configuration directory.
func (c *commandContext) configPaths() ([]string, error) {
	cfg, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(*c.configFlags))
	for _, p := range *c.configFlags {
		expanded, err := config.ExpandPath(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded)
	}

	dir := strings.TrimSpace(*c.configDirFlag)
	if dir == "" {
		dir = cfg.Paths.ConfigDir
	}
	if dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, err
		}
		files, err := fileutil.ListFiles(expanded)
		if err != nil {
			return nil, fmt.Errorf("list configuration directory: %w", err)
		}
		for _, f := range files {
			if filepath.Ext(f) == ".yml" {
				paths = append(paths, f)
			}
		}
	}

	if len(paths) == 0 {
		return nil, errors.New("no censor configurations given (use --config or --config-dir)")
	}
	return paths, nil
}

// loadSources loads every censor document and binds it to its root and
// output directories. The root defaults to the document's parent directory
// and the output to <root>/output.
func (c *commandContext) loadSources() ([]reconcile.Source, error) {
	cfg, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	paths, err := c.configPaths()
	if err != nil {
		return nil, err
	}

	rootOverride := strings.TrimSpace(*c.rootFlag)
	if rootOverride == "" {
		rootOverride = cfg.Paths.Root
	}
	if rootOverride != "" {
		if rootOverride, err = config.ExpandPath(rootOverride); err != nil {
			return nil, err
		}
	}
	outputOverride := strings.TrimSpace(*c.outputFlag)
	if outputOverride == "" {
		outputOverride = cfg.Paths.Output
	}
	if outputOverride != "" {
		if outputOverride, err = config.ExpandPath(outputOverride); err != nil {
			return nil, err
		}
	}

	sources := make([]reconcile.Source, 0, len(paths))
	for _, path := range paths {
		doc, err := censor.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load censor configuration %s: %w", path, err)
		}

		root := rootOverride
		if root == "" {
			root = filepath.Dir(path)
		}
		output := outputOverride
		if output == "" {
			output = filepath.Join(root, "output")
		}

		sources = append(sources, reconcile.Source{
			ConfigPath: path,
			Root:       root,
			Output:     output,
			Config:     doc,
		})
	}
	return sources, nil
}

// buildPlan loads all sources and reconciles them against the disk.
func (c *commandContext) buildPlan() (*reconcile.Plan, []reconcile.Source, error) {
	sources, err := c.loadSources()
	if err != nil {
		return nil, nil, err
	}
	plan, err := reconcile.Build(sources)
	if err != nil {
		return nil, nil, err
	}
	return plan, sources, nil
}
