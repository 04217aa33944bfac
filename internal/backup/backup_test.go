package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"subbom/internal/fileutil"
	"subbom/internal/scan"
)

func candidate(t *testing.T, dir, name, body string) scan.Candidate {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return scan.Candidate{Name: name, Path: path, Size: int64(len(body))}
}

func TestPrepareAndCopy(t *testing.T) {
	root := t.TempDir()
	m := New(root, nil)
	if m.Dir() != filepath.Join(root, "old") {
		t.Fatalf("unexpected backup dir %q", m.Dir())
	}
	if err := m.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	c := candidate(t, root, "a.srt", "caf\xe9")
	if err := m.Copy(c); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "old", "a.srt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "caf\xe9" {
		t.Fatalf("backup content %q", got)
	}
}

func TestPrepareReusesExistingDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, DirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := New(root, nil).Prepare(); err != nil {
		t.Fatalf("Prepare on existing dir: %v", err)
	}
}

func TestPrepareFailureIsDirectoryCreate(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, DirName), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := New(root, nil).Prepare()
	if !errors.Is(err, fileutil.ErrDirectoryCreate) {
		t.Fatalf("expected ErrDirectoryCreate, got %v", err)
	}
}

func TestCopyKeepsFirstBackup(t *testing.T) {
	root := t.TempDir()
	m := New(root, nil)
	if err := m.Prepare(); err != nil {
		t.Fatal(err)
	}
	c := candidate(t, root, "a.srt", "original")
	if err := m.Copy(c); err != nil {
		t.Fatalf("first copy: %v", err)
	}
	if err := os.WriteFile(c.Path, []byte("converted"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := m.Copy(c)
	if !errors.Is(err, fileutil.ErrFileCopy) {
		t.Fatalf("expected ErrFileCopy on second copy, got %v", err)
	}
	got, _ := os.ReadFile(filepath.Join(m.Dir(), "a.srt"))
	if string(got) != "original" {
		t.Fatalf("first backup replaced: %q", got)
	}
}

func TestCopyWithoutDirectoryFails(t *testing.T) {
	root := t.TempDir()
	m := New(root, nil)
	c := candidate(t, root, "a.srt", "x")
	if err := m.Copy(c); !errors.Is(err, fileutil.ErrFileCopy) {
		t.Fatalf("expected ErrFileCopy, got %v", err)
	}
}
