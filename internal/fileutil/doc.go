// Package fileutil holds the scoped file operations used by the backup and
// conversion phases, together with the failure taxonomy they report.
//
// Every helper opens, uses, and closes its handle within a single call so no
// descriptor outlives the operation, on success or failure. Errors are tagged
// with one of the exported sentinel markers so callers can classify them with
// errors.Is without parsing messages.
package fileutil
