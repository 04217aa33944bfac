package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"subbom/internal/convert"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusSkip
	statusFailed
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderStatusLine appends the bracketed status label to message. Only the
// label is colored so the line stays readable when copied.
func renderStatusLine(message string, kind statusKind, colorize bool) string {
	label := "[" + statusKindLabel(kind) + "]"
	if colorize {
		if color := statusKindColor(kind); color != "" {
			label = color + label + ansiReset
		}
	}
	return fmt.Sprintf("%s %s", message, label)
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusSkip:
		return "SKIP"
	default:
		return "FAILED"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusSkip:
		return ansiYellow
	case statusFailed:
		return ansiRed
	default:
		return ""
	}
}

func kindForError(err error) statusKind {
	if err != nil {
		return statusFailed
	}
	return statusOK
}

func kindForStatus(status convert.Status) statusKind {
	switch status {
	case convert.StatusOK:
		return statusOK
	case convert.StatusSkipped:
		return statusSkip
	default:
		return statusFailed
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
