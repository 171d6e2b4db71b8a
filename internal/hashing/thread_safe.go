// Package hashing provides position keys and duplicate detection for chess
// positions.
package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SharedTracker wraps a Tracker with mutex protection for concurrent use.
type SharedTracker struct {
	tracker *Tracker
	mu      sync.RWMutex
}

// NewSharedTracker creates a thread-safe duplicate tracker.
// maxCapacity of 0 means unlimited capacity.
func NewSharedTracker(exact bool, maxCapacity int) *SharedTracker {
	return &SharedTracker{
		tracker: NewTracker(exact, maxCapacity),
	}
}

// CheckAndAdd atomically reports whether p repeats a tracked position and
// records it otherwise.
func (st *SharedTracker) CheckAndAdd(p *engine.Position) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.tracker.CheckAndAdd(p)
}

// DuplicateCount returns the number of repeats detected.
func (st *SharedTracker) DuplicateCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tracker.DuplicateCount()
}

// UniqueCount returns the number of distinct positions tracked.
func (st *SharedTracker) UniqueCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tracker.UniqueCount()
}

// IsFull reports whether the tracker reached its capacity limit. It always
// returns false for unlimited capacity.
func (st *SharedTracker) IsFull() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tracker.IsFull()
}

// Merge copies entries from an existing tracker. Call before concurrent use.
func (st *SharedTracker) Merge(other *Tracker) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for key, sigs := range other.seen {
		st.tracker.seen[key] = append(st.tracker.seen[key], sigs...)
		st.tracker.tracked += len(sigs)
	}
}
