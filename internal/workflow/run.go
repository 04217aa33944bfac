package workflow

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"subbom/internal/backup"
	"subbom/internal/convert"
	"subbom/internal/encoding"
	"subbom/internal/logging"
	"subbom/internal/scan"
)

// Options configures a run.
type Options struct {
	// Dir is the directory whose subtitle files are converted.
	Dir string
	// LockDir holds the per-directory lock file. Empty means os.TempDir.
	LockDir string
	// ImplicitDir marks Dir as the working directory rather than one the
	// user named. An unreadable implicit directory is reported as holding no
	// subtitle files instead of failing the run.
	ImplicitDir bool
	Logger      *slog.Logger
	Observer    Observer
}

// Run backs up and converts every subtitle candidate in opts.Dir. Per-file
// problems end up in the report; the returned error is reserved for runs that
// could not start.
func Run(opts Options) (Report, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return Report{}, fmt.Errorf("resolve directory: %w", err)
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	rep := Report{
		RunID:     uuid.NewString(),
		Dir:       dir,
		StartedAt: time.Now(),
	}
	logger := logging.NewComponentLogger(opts.Logger, "workflow").With(logging.String(logging.FieldRunID, rep.RunID))
	logger.Info("run started", logging.String("dir", dir))

	lock, err := acquireLock(opts.LockDir, dir)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	candidates, err := scan.Candidates(dir)
	if err != nil {
		if !opts.ImplicitDir {
			return Report{}, err
		}
		logger.Warn("working directory unreadable", logging.String(logging.FieldPhase, "scan"), logging.Error(err))
		candidates = nil
	}
	logger.Info("scan complete", logging.String(logging.FieldPhase, "scan"), logging.Int("candidates", len(candidates)))

	if len(candidates) == 0 {
		observer.NoFiles(dir)
		rep.FinishedAt = time.Now()
		observer.Finished(rep)
		return rep, nil
	}

	rep.Files = make([]FileReport, len(candidates))
	for i, c := range candidates {
		rep.Files[i] = FileReport{Candidate: c}
	}

	runBackup(&rep, logger.With(logging.String(logging.FieldPhase, "backup")), observer)
	runConvert(&rep, logger.With(logging.String(logging.FieldPhase, "convert")), observer)

	rep.FinishedAt = time.Now()
	s := rep.Summary()
	logger.Info("run finished",
		logging.Int("converted", s.Converted),
		logging.Int("skipped", s.Skipped),
		logging.Int("failed", s.Failed),
		logging.Int("backup_failed", s.BackupFailed),
		logging.Duration("elapsed", rep.Duration()),
	)
	observer.Finished(rep)
	return rep, nil
}

func runBackup(rep *Report, logger *slog.Logger, observer Observer) {
	manager := backup.New(rep.Dir, logger)
	rep.BackupDir = manager.Dir()
	rep.BackupErr = manager.Prepare()
	observer.BackupPrepared(rep.BackupDir, rep.BackupErr)

	for i := range rep.Files {
		f := &rep.Files[i]
		f.BackupErr = manager.Copy(f.Candidate)
		observer.FileBackedUp(f.Candidate, f.BackupErr)
	}
}

func runConvert(rep *Report, logger *slog.Logger, observer Observer) {
	converter := convert.New(logger)
	observer.ConvertStarted(len(rep.Files))

	for i := range rep.Files {
		f := &rep.Files[i]
		f.Encoding = encoding.DetectFile(f.Path)
		res := converter.Convert(f.Path, f.Encoding)
		f.Status = res.Status
		f.Err = res.Err
		observer.FileConverted(*f)
	}
}

// Inspection is the detection result for one candidate.
type Inspection struct {
	scan.Candidate
	Encoding encoding.Encoding
}

// Inspect scans dir and detects the encoding of each candidate without
// backing up or writing anything.
func Inspect(dir string) ([]Inspection, error) {
	candidates, err := scan.Candidates(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Inspection, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Inspection{Candidate: c, Encoding: encoding.DetectFile(c.Path)})
	}
	return out, nil
}
