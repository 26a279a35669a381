// Package atomicfile replaces files so readers never observe partial
// contents.
package atomicfile

import (
	"io"
	"os"
	"path/filepath"
)

// Write calls fill with a temp file in path's directory and, if fill
// succeeds, syncs it and renames it over path. On any failure the temp file
// is removed and path is left untouched.
func Write(path string, mode os.FileMode, fill func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// After a successful rename tmp no longer exists and this is a no-op.
	defer func() { _ = os.Remove(tmp) }()

	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WriteBytes atomically replaces path with b.
func WriteBytes(path string, b []byte, mode os.FileMode) error {
	return Write(path, mode, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}
