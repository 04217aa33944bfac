package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"subbom/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
}

// New constructs a slog logger using the provided options. The returned
// close function releases any log files opened for OutputPaths; it is safe to
// call when only stdout or stderr are used.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	writer, files, err := openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}))
	if err != nil {
		return nil, nil, err
	}

	addSource := level <= slog.LevelDebug

	var handler slog.Handler
	if format == "json" {
		handler = newJSONHandler(writer, levelVar, addSource)
	} else {
		handler = newPrettyHandler(writer, levelVar, addSource)
	}

	return slog.New(handler), closeFiles(files), nil
}

// NewFromConfig creates a logger from the [logging] section. A nil config
// yields a warn-level console logger on stderr.
func NewFromConfig(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg == nil {
		defaults := config.Default()
		defaults.Logging.Level = "warn"
		cfg = &defaults
	}

	outputPaths := []string{"stderr"}
	if file := strings.TrimSpace(cfg.Logging.File); file != "" {
		outputPaths = append(outputPaths, file)
	}

	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputPaths,
	})
}

// ParseLevel maps a configured level name to a slog level. An empty value
// means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		return append([]string(nil), fallback...)
	}
	return append([]string(nil), value...)
}

func openWriters(paths []string) (io.Writer, []*os.File, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer
	var files []*os.File

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					_ = closeFiles(files)()
					return nil, nil, fmt.Errorf("ensure log directory: %w", err)
				}
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				_ = closeFiles(files)()
				return nil, nil, fmt.Errorf("open log file %s: %w", trimmed, err)
			}
			writers = append(writers, file)
			files = append(files, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, files, nil
	case 1:
		return writers[0], files, nil
	default:
		return io.MultiWriter(writers...), files, nil
	}
}

func closeFiles(files []*os.File) func() error {
	return func() error {
		var errs []error
		for _, f := range files {
			if err := f.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}
