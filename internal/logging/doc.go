// Package logging assembles the structured slog loggers used by subbom.
//
// It owns the console and JSON handlers, level parsing, and output routing,
// and exposes attribute helpers and standard field names so the backup and
// conversion phases tag records the same way. A no-op logger is provided for
// tests and for wiring code that runs before configuration is loaded.
package logging
