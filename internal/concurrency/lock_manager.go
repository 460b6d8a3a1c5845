package concurrency

import (
	"path/filepath"
	"sync"
)

// LockManager hands out one mutex per file path so every store that touches
// the same file shares a critical section.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for path. Equivalent spellings of a path
// ("./a/b", "a/b") resolve to the same lock.
func (lm *LockManager) GetLock(path string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(normalize(path), &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for path.
func (lm *LockManager) WithLock(path string, fn func() error) error {
	mu := lm.GetLock(path)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
