// Package scan enumerates the subtitle files a run operates on.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the subtitle extensions picked up by a run.
var Extensions = []string{".ass", ".ssa", ".srt", ".txt"}

// Candidate is a file selected for backup and conversion.
type Candidate struct {
	Name string
	Path string
	Size int64
}

// Candidates lists the regular files directly inside dir whose extension is
// one of Extensions, compared case-insensitively. Subdirectories are not
// descended into. Symlinks are followed; dangling ones are skipped. The
// result is sorted by name.
func Candidates(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	out := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !IsSubtitle(name) {
			continue
		}
		path := filepath.Join(dir, name)

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			info, err = os.Stat(path)
			if err != nil {
				continue
			}
		}
		if !info.Mode().IsRegular() {
			continue
		}

		out = append(out, Candidate{Name: name, Path: path, Size: info.Size()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// IsSubtitle reports whether name carries one of the candidate extensions.
func IsSubtitle(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
