package hashing

import (
	"sync"
)

// ThreadSafePositionIndex wraps PositionIndex with mutex protection for concurrent access.
type ThreadSafePositionIndex struct {
	index *PositionIndex
	mu    sync.RWMutex
}

// NewThreadSafePositionIndex creates a new thread-safe index.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionIndex(maxCapacity int) *ThreadSafePositionIndex {
	return &ThreadSafePositionIndex{
		index: NewPositionIndex(maxCapacity),
	}
}

// CheckAndAdd atomically checks if a position was seen and records it.
func (x *ThreadSafePositionIndex) CheckAndAdd(occ Occurrence) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.index.CheckAndAdd(occ)
}

// Lookup returns the first recorded occurrence matching occ.
func (x *ThreadSafePositionIndex) Lookup(occ Occurrence) (Occurrence, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.index.Lookup(occ)
}

// DuplicateCount returns the number of repeats detected.
func (x *ThreadSafePositionIndex) DuplicateCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.index.DuplicateCount()
}

// UniqueCount returns the number of distinct positions stored.
func (x *ThreadSafePositionIndex) UniqueCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.index.UniqueCount()
}

// IsFull returns true if the index has reached its capacity limit.
func (x *ThreadSafePositionIndex) IsFull() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.index.IsFull()
}
