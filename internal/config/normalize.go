package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeConsole()
	return c.normalizePaths()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv(envLogLevel); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

func (c *Config) normalizeConsole() {
	c.Console.Color = strings.ToLower(strings.TrimSpace(c.Console.Color))
	if c.Console.Color == "" {
		c.Console.Color = defaultConsoleColor
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Logging.File) != "" {
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = os.TempDir()
	}
	if c.Paths.LockDir, err = expandPath(strings.TrimSpace(c.Paths.LockDir)); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}
