// Package config loads, normalizes, and validates subbom configuration.
//
// Configuration only covers the ambient behavior of the tool: log format,
// level and optional log file, console colors, and where run locks live. The
// conversion itself (candidate extensions, backup directory name, output
// encoding) is fixed and deliberately absent here.
//
// Always obtain settings through Load so callers receive expanded paths and
// clear validation errors.
package config
