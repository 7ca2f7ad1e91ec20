//go:build unix

package filelock

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lock := New("/tmp/test.lock")
	if lock.Path() != "/tmp/test.lock" {
		t.Errorf("expected path = '/tmp/test.lock', got %q", lock.Path())
	}
	if lock.file != nil {
		t.Error("expected file to be nil initially")
	}
}

func TestFileLock_LockUnlock(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "test.lock")
	lock := New(lockPath)

	if err := lock.Lock(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("lock file should exist after locking")
	}
	if lock.file == nil {
		t.Error("expected file handle to be set after locking")
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if lock.file != nil {
		t.Error("expected file handle to be nil after unlocking")
	}

	// Unlocking again is a no-op.
	if err := lock.Unlock(); err != nil {
		t.Errorf("second Unlock() should not error, got %v", err)
	}
}

func TestFileLock_MissingDirectory(t *testing.T) {
	t.Parallel()

	lock := New(filepath.Join(t.TempDir(), "missing", "test.lock"))
	if err := lock.Lock(); err == nil {
		lock.Unlock()
		t.Fatal("expected error when the lock directory does not exist")
	}
}

func TestFileLock_Concurrent(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "test.lock")

	first := New(lockPath)
	if err := first.Lock(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		second := New(lockPath)
		if err := second.Lock(); err != nil {
			t.Errorf("second Lock() error = %v", err)
			close(acquired)
			return
		}
		close(acquired)
		second.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(50 * time.Millisecond):
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second lock never acquired")
	}
}

func TestWith(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "counter.lock")

	var mu sync.Mutex
	inside := 0
	maxInside := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := With(lockPath, func() error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(5 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Errorf("With() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Errorf("max holders = %d, want 1", maxInside)
	}
}

func TestWith_ReturnsCallbackError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	err := With(filepath.Join(t.TempDir(), "x.lock"), func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("With() error = %v, want %v", err, want)
	}
}
