// Package store keeps the last successful fetch of each resource in memory so
// a failing upstream degrades to stale data before it degrades to sample data.
package store

import (
	"sync"
	"time"
)

// Cache holds the last good snapshot of a record list.
type Cache[T any] struct {
	mu      sync.RWMutex
	records []T
	setAt   time.Time
	ok      bool
}

// NewCache constructs an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Set replaces the snapshot with a copy of records.
func (c *Cache[T]) Set(records []T) {
	snapshot := make([]T, len(records))
	copy(snapshot, records)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = snapshot
	c.setAt = time.Now()
	c.ok = true
}

// Get returns a copy of the snapshot, when it was stored, and whether one exists.
func (c *Cache[T]) Get() ([]T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.ok {
		return nil, time.Time{}, false
	}
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, c.setAt, true
}

// Clear drops the snapshot.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.ok = false
}
