// Package backup copies candidate files into the run's backup directory
// before anything is rewritten.
package backup

import (
	"log/slog"
	"path/filepath"

	"subbom/internal/fileutil"
	"subbom/internal/logging"
	"subbom/internal/scan"
)

// DirName is the fixed name of the backup directory, created next to the
// scanned files.
const DirName = "old"

// Manager owns the backup directory of one run.
type Manager struct {
	dir    string
	logger *slog.Logger
}

// New returns a Manager backing up into <root>/old.
func New(root string, logger *slog.Logger) *Manager {
	return &Manager{
		dir:    filepath.Join(root, DirName),
		logger: logging.NewComponentLogger(logger, "backup"),
	}
}

// Dir returns the backup directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// Prepare creates the backup directory. An existing directory is reused.
// Failure is returned for reporting only; Copy may still be attempted.
func (m *Manager) Prepare() error {
	if err := fileutil.EnsureDir(m.dir); err != nil {
		m.logger.Warn("backup directory unavailable",
			logging.String(logging.FieldFile, m.dir),
			logging.String(logging.FieldErrorKind, fileutil.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	m.logger.Debug("backup directory ready", logging.String(logging.FieldFile, m.dir))
	return nil
}

// Copy places a verified copy of c in the backup directory. An existing
// backup of the same name is never replaced, so the first backup of a file
// survives later runs.
func (m *Manager) Copy(c scan.Candidate) error {
	dst := filepath.Join(m.dir, c.Name)
	if err := fileutil.CopyFileVerified(c.Path, dst); err != nil {
		m.logger.Warn("backup copy failed",
			logging.String(logging.FieldFile, c.Name),
			logging.String(logging.FieldErrorKind, fileutil.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	m.logger.Debug("backup copied", logging.String(logging.FieldFile, c.Name), logging.Int64("bytes", c.Size))
	return nil
}
