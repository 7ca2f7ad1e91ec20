// Package filelock provides an exclusive advisory lock on a file.
package filelock

import (
	"os"
)

// FileLock provides exclusive file-based locking.
type FileLock struct {
	path string
	file *os.File
}

// New creates a new file lock for the given path.
// The lock file will be created if it doesn't exist.
func New(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// Lock acquires an exclusive lock on the file.
// Blocks until the lock is acquired.
func (l *FileLock) Lock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	l.file = f

	if err := lock(f); err != nil {
		f.Close()
		l.file = nil
		return err
	}

	return nil
}

// Unlock releases the lock and closes the file.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := unlock(l.file); err != nil {
		l.file.Close()
		l.file = nil
		return err
	}

	err := l.file.Close()
	l.file = nil
	return err
}

// With runs fn while holding the lock at path.
func With(path string, fn func() error) (err error) {
	l := New(path)
	if err := l.Lock(); err != nil {
		return err
	}
	defer func() {
		if uerr := l.Unlock(); err == nil {
			err = uerr
		}
	}()
	return fn()
}
