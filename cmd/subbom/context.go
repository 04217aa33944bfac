package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"subbom/internal/config"
	"subbom/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	noColorFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, noColorFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		noColorFlag:  noColorFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				if level == "warning" {
					level = "warn"
				}
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the run logger. The returned function closes the log file,
// if one is configured.
func (c *commandContext) logger() (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFromConfig(cfg)
}

// colorize decides whether status labels written to w get ANSI colors.
func (c *commandContext) colorize(w io.Writer) bool {
	if c.noColorFlag != nil && *c.noColorFlag {
		return false
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return false
	}
	switch cfg.Console.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(w)
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

func dirArg(args []string) string {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "."
	}
	return args[0]
}
