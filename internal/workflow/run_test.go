package workflow

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"subbom/internal/convert"
	"subbom/internal/encoding"
	"subbom/internal/fileutil"
	"subbom/internal/scan"
	"subbom/internal/testsupport"
)

type recordingObserver struct {
	events []string
	report Report
}

func (o *recordingObserver) NoFiles(string) { o.events = append(o.events, "nofiles") }

func (o *recordingObserver) BackupPrepared(_ string, err error) {
	o.events = append(o.events, "prepare:"+okOrFailed(err))
}

func (o *recordingObserver) FileBackedUp(c scan.Candidate, err error) {
	o.events = append(o.events, "backup:"+c.Name+":"+okOrFailed(err))
}

func (o *recordingObserver) ConvertStarted(total int) {
	o.events = append(o.events, "convert-start")
}

func (o *recordingObserver) FileConverted(f FileReport) {
	o.events = append(o.events, "convert:"+f.Name+":"+f.Status.String())
}

func (o *recordingObserver) Finished(r Report) {
	o.events = append(o.events, "finished")
	o.report = r
}

func okOrFailed(err error) string {
	if err != nil {
		return "FAILED"
	}
	return "OK"
}

func TestRunEndToEnd(t *testing.T) {
	asciiBody := "1\n00:00:01,000 --> 00:00:02,000\nHello\n"
	bomBody := testsupport.WithBOM("1\n00:00:01,000 --> 00:00:02,000\nBonjour à tous\n")
	dir := testsupport.SubtitleDir(t, map[string][]byte{
		"a.srt":     []byte(asciiBody),
		"b.txt":     bomBody,
		"video.mkv": []byte("not a subtitle"),
	})
	obs := &recordingObserver{}

	rep, err := Run(Options{Dir: dir, LockDir: t.TempDir(), Observer: obs})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := testsupport.ReadFile(t, filepath.Join(dir, "a.srt")); !bytes.Equal(got, testsupport.WithBOM(asciiBody)) {
		t.Fatalf("a.srt = %q", got)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "b.txt")); !bytes.Equal(got, bomBody) {
		t.Fatalf("b.txt changed: %q", got)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "old", "a.srt")); string(got) != asciiBody {
		t.Fatalf("backup of a.srt = %q", got)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "old", "b.txt")); !bytes.Equal(got, bomBody) {
		t.Fatalf("backup of b.txt = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "old", "video.mkv")); !os.IsNotExist(err) {
		t.Fatal("non-subtitle file should not be backed up")
	}

	wantEvents := []string{
		"prepare:OK",
		"backup:a.srt:OK",
		"backup:b.txt:OK",
		"convert-start",
		"convert:a.srt:OK",
		"convert:b.txt:SKIP",
		"finished",
	}
	if strings.Join(obs.events, ",") != strings.Join(wantEvents, ",") {
		t.Fatalf("events = %v, want %v", obs.events, wantEvents)
	}

	if rep.RunID == "" || rep.BackupDir != filepath.Join(dir, "old") {
		t.Fatalf("unexpected report header %+v", rep)
	}
	if rep.Files[0].Encoding != encoding.Ascii7 || rep.Files[1].Encoding != encoding.Utf8BOM {
		t.Fatalf("unexpected encodings %v %v", rep.Files[0].Encoding, rep.Files[1].Encoding)
	}
	s := rep.Summary()
	if s.Files != 2 || s.Converted != 1 || s.Skipped != 1 || s.Failed != 0 || s.BackedUp != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if rep.Duration() < 0 {
		t.Fatalf("negative duration %v", rep.Duration())
	}
}

func TestRunNoFiles(t *testing.T) {
	dir := testsupport.SubtitleDir(t, map[string][]byte{"readme.md": []byte("x")})
	obs := &recordingObserver{}

	rep, err := Run(Options{Dir: dir, LockDir: t.TempDir(), Observer: obs})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Files) != 0 {
		t.Fatalf("expected no files, got %+v", rep.Files)
	}
	if strings.Join(obs.events, ",") != "nofiles,finished" {
		t.Fatalf("unexpected events %v", obs.events)
	}
	if _, err := os.Stat(filepath.Join(dir, "old")); !os.IsNotExist(err) {
		t.Fatal("backup directory must not be created when there is nothing to convert")
	}
}

func TestRunBackupFailuresDoNotStopConversion(t *testing.T) {
	dir := testsupport.SubtitleDir(t, map[string][]byte{
		"a.srt": []byte("caf\xe9 ok"),
		"old":   []byte("a file where the backup dir should be"),
	})
	obs := &recordingObserver{}

	rep, err := Run(Options{Dir: dir, LockDir: t.TempDir(), Observer: obs})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !errors.Is(rep.BackupErr, fileutil.ErrDirectoryCreate) {
		t.Fatalf("expected directory create failure, got %v", rep.BackupErr)
	}
	if !errors.Is(rep.Files[0].BackupErr, fileutil.ErrFileCopy) {
		t.Fatalf("expected copy failure, got %v", rep.Files[0].BackupErr)
	}
	if rep.Files[0].Status != convert.StatusOK {
		t.Fatalf("conversion should still run, got %+v", rep.Files[0])
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "a.srt")); !bytes.Equal(got, testsupport.WithBOM("café ok")) {
		t.Fatalf("a.srt = % x", got)
	}
	s := rep.Summary()
	if s.BackupFailed != 1 || s.Converted != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestRunSecondPassSkipsEverything(t *testing.T) {
	dir := testsupport.SubtitleDir(t, map[string][]byte{
		"a.ass": []byte("[Script Info]\nTitle: \xd0\x9f\xd1\x80\xd0\xb8\xd0\xb2\xd0\xb5\xd1\x82\n"),
	})
	lockDir := t.TempDir()
	if _, err := Run(Options{Dir: dir, LockDir: lockDir}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	converted := testsupport.ReadFile(t, filepath.Join(dir, "a.ass"))

	rep, err := Run(Options{Dir: dir, LockDir: lockDir})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if rep.Files[0].Status != convert.StatusSkipped {
		t.Fatalf("expected skip on second run, got %v", rep.Files[0].Status)
	}
	if !errors.Is(rep.Files[0].BackupErr, fileutil.ErrFileCopy) {
		t.Fatalf("second backup should refuse to replace the first, got %v", rep.Files[0].BackupErr)
	}
	if !bytes.Equal(testsupport.ReadFile(t, filepath.Join(dir, "a.ass")), converted) {
		t.Fatal("second run changed the file")
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "old", "a.ass")); got[0] == 0xEF {
		t.Fatal("original backup was replaced by converted content")
	}
}

func TestRunRefusesLockedDirectory(t *testing.T) {
	dir := testsupport.SubtitleDir(t, map[string][]byte{"a.srt": []byte("x")})
	lockDir := t.TempDir()
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	held := flock.New(lockPath(lockDir, abs))
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("pre-lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	_, err = Run(Options{Dir: dir, LockDir: lockDir})
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "a.srt")); string(got) != "x" {
		t.Fatal("locked run must not touch files")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	if _, err := Run(Options{Dir: filepath.Join(t.TempDir(), "missing"), LockDir: t.TempDir()}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLockPathDiffersPerDirectory(t *testing.T) {
	if lockPath("/locks", "/a") == lockPath("/locks", "/b") {
		t.Fatal("lock paths should differ per directory")
	}
	if filepath.Dir(lockPath("/locks", "/a")) != "/locks" {
		t.Fatal("lock should live in the lock dir")
	}
}

func TestInspect(t *testing.T) {
	dir := testsupport.SubtitleDir(t, map[string][]byte{
		"a.srt": []byte("plain"),
		"b.srt": testsupport.WithBOM("x"),
		"c.srt": []byte("\xc2\xa9 2024"),
		"d.srt": []byte("\xa9 2024"),
	})

	got, err := Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	want := []encoding.Encoding{encoding.Ascii7, encoding.Utf8BOM, encoding.Utf8NoBOM, encoding.Ascii8}
	if len(got) != len(want) {
		t.Fatalf("got %d inspections", len(got))
	}
	for i, enc := range want {
		if got[i].Encoding != enc {
			t.Fatalf("%s: got %v want %v", got[i].Name, got[i].Encoding, enc)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "old")); !os.IsNotExist(err) {
		t.Fatal("Inspect must not create a backup directory")
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "a.srt")); string(got) != "plain" {
		t.Fatal("Inspect must not modify files")
	}
}

func TestRunUnreadableWorkingDirectoryHasNoFiles(t *testing.T) {
	obs := &recordingObserver{}
	rep, err := Run(Options{
		Dir:         filepath.Join(t.TempDir(), "gone"),
		ImplicitDir: true,
		LockDir:     t.TempDir(),
		Observer:    obs,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Files) != 0 {
		t.Fatalf("expected no files, got %+v", rep.Files)
	}
	if strings.Join(obs.events, ",") != "nofiles,finished" {
		t.Fatalf("unexpected events %v", obs.events)
	}
}
