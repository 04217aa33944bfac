package workflow

import "subbom/internal/scan"

// Observer receives run progress in the order events happen. Implementations
// render console output; they must not block.
type Observer interface {
	NoFiles(dir string)
	BackupPrepared(dir string, err error)
	FileBackedUp(c scan.Candidate, err error)
	ConvertStarted(total int)
	FileConverted(f FileReport)
	Finished(r Report)
}

type nopObserver struct{}

func (nopObserver) NoFiles(string)                     {}
func (nopObserver) BackupPrepared(string, error)       {}
func (nopObserver) FileBackedUp(scan.Candidate, error) {}
func (nopObserver) ConvertStarted(int)                 {}
func (nopObserver) FileConverted(FileReport)           {}
func (nopObserver) Finished(Report)                    {}

var _ Observer = nopObserver{}

