package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryBlocklist is an in-process token blocklist with expiration. It is
// used when Redis is disabled and only protects a single API instance.
type MemoryBlocklist struct {
	mu    sync.RWMutex
	items map[string]time.Time
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

// NewMemoryBlocklist creates a new in-memory blocklist
func NewMemoryBlocklist() *MemoryBlocklist {
	store := &MemoryBlocklist{
		items: make(map[string]time.Time),
		now:   time.Now,
		done:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Revoke blocks tokenID until the given time
func (ms *MemoryBlocklist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	if !until.After(ms.now()) {
		return nil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[tokenID] = until
	return nil
}

// IsRevoked reports whether tokenID is blocked and not yet expired
func (ms *MemoryBlocklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	until, exists := ms.items[tokenID]
	if !exists {
		return false, nil
	}

	return ms.now().Before(until), nil
}

// Len returns the number of tracked entries, expired or not
func (ms *MemoryBlocklist) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.items)
}

// Close stops the cleanup goroutine
func (ms *MemoryBlocklist) Close() error {
	ms.once.Do(func() { close(ms.done) })
	return nil
}

func (ms *MemoryBlocklist) purge() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, until := range ms.items {
		if !now.Before(until) {
			delete(ms.items, key)
		}
	}
}

// cleanupExpired periodically removes expired items
func (ms *MemoryBlocklist) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.purge()
		case <-ms.done:
			return
		}
	}
}
