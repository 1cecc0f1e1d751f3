package mcp

import (
	"path/filepath"
	"sync"

	"commitkit.dev/commitkit/internal/git"
)

// repoLocks hands out one mutex per repository root. Entries are dropped
// once no caller holds or waits on them.
type repoLocks struct {
	mu    sync.Mutex
	locks map[string]*repoLock
}

type repoLock struct {
	mu   sync.Mutex
	refs int
}

func newRepoLocks() *repoLocks {
	return &repoLocks{locks: make(map[string]*repoLock)}
}

// Lock blocks until the lock for key is held and returns its release func.
func (l *repoLocks) Lock(key string) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &repoLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live entries.
func (l *repoLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// repoKey maps path to the work tree root containing it, so different
// spellings of the same repository share a lock. Paths outside a repository
// fall back to their absolute form.
func repoKey(path string) string {
	path = git.ResolveRoot(path)
	if repo, err := git.OpenRepository(path); err == nil {
		if root, err := repo.GetRepoRoot(); err == nil {
			return filepath.Clean(root)
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
