package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// EnsureDir creates dir when missing. An existing directory is accepted; an
// existing non-directory is not.
func EnsureDir(dir string) error {
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			info, statErr := os.Stat(dir)
			if statErr == nil && info.IsDir() {
				return nil
			}
			return Wrap(ErrDirectoryCreate, "mkdir", dir, errors.New("path exists and is not a directory"))
		}
		return Wrap(ErrDirectoryCreate, "mkdir", dir, err)
	}
	return nil
}

// ReadFile opens path, reads it fully, and closes it.
func ReadFile(path string) ([]byte, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, Wrap(ErrOpenForRead, "open", path, err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, Wrap(ErrOpenForRead, "read", path, err)
	}
	return data, nil
}

// RewriteFile truncates path (creating it if needed) and hands the open
// handle to write. The handle is closed before RewriteFile returns; a failing
// close is reported because it can lose buffered data.
func RewriteFile(path string, write func(io.Writer) error) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Wrap(ErrOpenForWrite, "open", path, err)
	}
	defer out.Close()

	if err := write(out); err != nil {
		return Wrap(ErrOpenForWrite, "write", path, err)
	}
	if err := out.Close(); err != nil {
		return Wrap(ErrOpenForWrite, "close", path, err)
	}
	return nil
}

// CopyFileVerified copies src to dst and checks size and SHA-256 of both
// sides. dst must not exist yet, so an earlier copy is never replaced. A
// mismatching copy is removed.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return Wrap(ErrFileCopy, "stat", src, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return Wrap(ErrFileCopy, "copy", src, errors.New("not a regular file"))
	}

	in, err := os.Open(src)
	if err != nil {
		return Wrap(ErrFileCopy, "open", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, srcInfo.Mode().Perm())
	if err != nil {
		return Wrap(ErrFileCopy, "create", dst, err)
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return Wrap(ErrFileCopy, "copy", src, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return Wrap(ErrFileCopy, "close", dst, err)
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return Wrap(ErrFileCopy, "verify", dst, fmt.Errorf("size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written))
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return Wrap(ErrFileCopy, "verify", dst, errors.New("hash mismatch"))
	}
	return nil
}
