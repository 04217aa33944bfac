// Package workflow drives one subbom run over a directory.
//
// Run enumerates the subtitle candidates, backs every one of them up, and
// only then converts them one by one, in that strict order and on a single
// goroutine. Per-file failures in either phase are recorded in the Report and
// passed to the Observer; they never stop the run. The only errors Run
// returns are those that prevent a run from starting at all: an unreadable
// directory the user named or another run already holding the directory
// lock. An unreadable working directory simply has no files.
//
// Inspect performs the scan and detection steps alone and touches nothing.
package workflow
