package fileutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDirectoryCreate = errors.New("directory create failed")
	ErrFileCopy        = errors.New("file copy failed")
	ErrOpenForRead     = errors.New("file open for read failed")
	ErrOpenForWrite    = errors.New("file open for write failed")
)

// Wrap tags err with marker and the operation/path that produced it. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, op, path string, err error) error {
	if marker == nil {
		marker = ErrFileCopy
	}
	detail := buildDetail(op, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the taxonomy name of err, or an empty string when err carries
// none of the markers.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDirectoryCreate):
		return "DirectoryCreateFailed"
	case errors.Is(err, ErrFileCopy):
		return "FileCopyFailed"
	case errors.Is(err, ErrOpenForRead):
		return "FileOpenForReadFailed"
	case errors.Is(err, ErrOpenForWrite):
		return "FileOpenForWriteFailed"
	default:
		return ""
	}
}

func buildDetail(op, path string) string {
	parts := make([]string, 0, 2)
	if op = strings.TrimSpace(op); op != "" {
		parts = append(parts, op)
	}
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, path)
	}
	if len(parts) == 0 {
		return "file operation"
	}
	return strings.Join(parts, " ")
}
