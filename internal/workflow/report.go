package workflow

import (
	"time"

	"subbom/internal/convert"
	"subbom/internal/encoding"
	"subbom/internal/scan"
)

// FileReport is the outcome for one candidate across both phases.
type FileReport struct {
	scan.Candidate
	BackupErr error
	Encoding  encoding.Encoding
	Status    convert.Status
	Err       error
}

// Report describes a finished run.
type Report struct {
	RunID      string
	Dir        string
	BackupDir  string
	BackupErr  error
	Files      []FileReport
	StartedAt  time.Time
	FinishedAt time.Time
}

// Summary counts per-file outcomes.
type Summary struct {
	Files        int
	BackedUp     int
	BackupFailed int
	Converted    int
	Skipped      int
	Failed       int
}

// Summary tallies the report.
func (r Report) Summary() Summary {
	s := Summary{Files: len(r.Files)}
	for _, f := range r.Files {
		if f.BackupErr != nil {
			s.BackupFailed++
		} else {
			s.BackedUp++
		}
		switch f.Status {
		case convert.StatusOK:
			s.Converted++
		case convert.StatusSkipped:
			s.Skipped++
		case convert.StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Duration returns how long the run took.
func (r Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
