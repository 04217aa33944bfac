package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// UTF8BOM is the byte order mark prefixed to converted files.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// WithBOM returns body prefixed by the UTF-8 byte order mark.
func WithBOM(body string) []byte {
	return append(append([]byte(nil), UTF8BOM...), body...)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// SubtitleDir creates a temp directory holding the given files.
func SubtitleDir(t testing.TB, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range files {
		WriteFile(t, filepath.Join(dir, name), data)
	}
	return dir
}
