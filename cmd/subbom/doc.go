// Package main hosts the subbom CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger, and hands the working directory to the workflow package. Commands
// only render what the workflow reports: status lines while a run progresses,
// a summary table when it finishes, and the detection table for dry runs.
//
// Keep this package lean: new behavior belongs in the internal packages and
// is surfaced here through commands or flags.
package main
