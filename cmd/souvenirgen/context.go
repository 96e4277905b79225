package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/config"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/history"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/logging"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withRunner builds the logger, history store, and runner for one command
// invocation and tears the store down afterwards.
func (c *commandContext) withRunner(fn func(*regen.Runner) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	store, err := c.openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	runner, err := regen.New(cfg, logger, store)
	if err != nil {
		return err
	}
	return fn(runner)
}

// withHistory opens the history store for read-only queries. It fails when
// history is disabled because there is nothing to query.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errors.New("run history is disabled; enable [history] in the configuration file")
	}

	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// openHistory returns a nil store when recording is disabled so runs still
// work without a database.
func (c *commandContext) openHistory(cfg *config.Config, logger *slog.Logger) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history store unavailable, run will not be recorded", logging.Error(err))
		return nil, nil
	}
	return store, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
