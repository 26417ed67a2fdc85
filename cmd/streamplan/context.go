package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"streamplan/internal/config"
	"streamplan/internal/logging"
	"streamplan/internal/plugin"
	"streamplan/internal/resolve"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		logger, logErr := logging.NewFromConfig(cfg)
		if logErr != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger, nil
}

// runner constructs the named plugin. The reorder plugin gets the lookup
// resolver; the others only need configuration.
func (c *commandContext) runner(name string) (plugin.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	switch name {
	case plugin.NameConvert:
		return plugin.NewConvert(cfg, logger), nil
	case plugin.NameExtract:
		return plugin.NewExtract(cfg, logger), nil
	case plugin.NameReorder:
		resolver, err := resolve.NewFromConfig(cfg, logger)
		if err != nil {
			return nil, err
		}
		return plugin.NewReorder(cfg, resolver, logger), nil
	default:
		return nil, fmt.Errorf("unknown plugin %q (expected %s, %s, or %s)",
			name, plugin.NameConvert, plugin.NameExtract, plugin.NameReorder)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
