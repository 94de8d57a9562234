// Package filelock coordinates file access across processes: an exclusive
// flock wrapper plus atomic write-by-rename, used wherever the CLI writes
// shared files (config, starter scaffolds).
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock is an exclusive advisory lock backed by a lock file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock at the given path. The lock file is created on first
// acquisition.
func New(path string) *FileLock {
	return &FileLock{flock: flock.New(path), path: path}
}

// Lock blocks until the exclusive lock is acquired.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts the lock without blocking and reports whether it was
// acquired.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data via a temp file in the target's directory followed
// by a rename, so readers never observe a partial write. The temp file lives
// on the same filesystem as the target, which is what makes the rename
// atomic; on failure the original file is untouched.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	tmp = nil
	return nil
}

// LockAndWrite acquires the lock at path+".lock", writes atomically, and
// releases the lock. The target directory is created first; the lock file
// cannot be opened in a directory that does not exist yet.
func LockAndWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	lock := New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return AtomicWrite(path, data)
}
