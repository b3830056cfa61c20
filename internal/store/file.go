package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm    os.FileMode = 0o700
	secretPerm os.FileMode = 0o600
)

// writeFileAtomic replaces path with data so that readers observe either the
// previous content or the complete new content, never a partial write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create dir %s: %w", ErrWritingFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w: chmod: %w", ErrWritingFile, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write: %w", ErrWritingFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: fsync: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrWritingFile, err)
	}
	return nil
}
