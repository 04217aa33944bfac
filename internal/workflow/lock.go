package workflow

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the lock for the directory.
var ErrLocked = errors.New("another subbom run is already converting this directory")

// lockPath derives the lock file for dir. The name hashes the absolute
// directory so runs on different directories never contend.
func lockPath(lockDir, dir string) string {
	sum := sha256.Sum256([]byte(dir))
	return filepath.Join(lockDir, "subbom-"+hex.EncodeToString(sum[:8])+".lock")
}

func acquireLock(lockDir, dir string) (*flock.Flock, error) {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", lockDir, err)
	}

	lock := flock.New(lockPath(lockDir, dir))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return lock, nil
}
