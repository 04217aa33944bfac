package testsupport

import (
	"path/filepath"
	"testing"

	"subbom/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a normalized config whose lock directory lives in a
// per-test temp dir. Options are applied last.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Level = "warn"
	cfgVal.Console.Color = config.ColorNever
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithLogFile routes log records to a file under the test base directory.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", name)
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}
