package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockFileName   = ".lookalike.lock"
	lockFileSuffix = ".lock"
)

// RunLock is an exclusive file lock held for the duration of one run.
type RunLock struct {
	lock *flock.Flock
	path string
}

// NewOutputLock creates the lock guarding an output directory.
func NewOutputLock(outDir string) (*RunLock, error) {
	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute output path: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}
	lockPath := filepath.Join(absDir, lockFileName)
	return &RunLock{lock: flock.New(lockPath), path: lockPath}, nil
}

// NewDBLock creates the lock guarding a SQLite database file.
func NewDBLock(dbPath string) (*RunLock, error) {
	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute db path: %w", err)
	}
	lockPath := absPath + lockFileSuffix
	return &RunLock{lock: flock.New(lockPath), path: lockPath}, nil
}

// Path returns the lock file location.
func (l *RunLock) Path() string {
	return l.path
}

// Lock acquires the lock, waiting if necessary.
// It will print a message if it has to wait.
func (l *RunLock) Lock() error {
	locked, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another lookalike process holds %s, waiting for it to finish...\n", l.Path())
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// TryLock acquires the lock only if it is free.
func (l *RunLock) TryLock() (bool, error) {
	return l.lock.TryLock()
}

// Unlock releases the lock.
func (l *RunLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
