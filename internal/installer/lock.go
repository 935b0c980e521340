package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// InstallLock is an advisory cross-process lock guarding a target
// directory so two concurrent installs cannot interleave writes.
// The lock file lives next to the target, not inside it, because the
// target may be removed and recreated mid-install.
type InstallLock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewInstallLock creates a lock for the project at target.
func NewInstallLock(target string) *InstallLock {
	dir := filepath.Dir(target)
	name := "." + filepath.Base(target) + ".chitty-install.lock"
	path := filepath.Join(dir, name)
	return &InstallLock{path: path, flock: flock.New(path)}
}

// TryLock attempts to acquire the lock without blocking. Returns false
// when another install holds it.
func (l *InstallLock) TryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return false, fmt.Errorf("creating lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquiring install lock: %w", err)
	}
	if acquired {
		l.locked = true
	}
	return acquired, nil
}

// Unlock releases the lock and removes the lock file. Safe to call on an
// unlocked InstallLock.
func (l *InstallLock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("releasing install lock: %w", err)
	}
	_ = os.Remove(l.path)
	return nil
}

// Path returns the lock file location.
func (l *InstallLock) Path() string {
	return l.path
}
