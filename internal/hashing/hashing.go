// Package hashing provides position keys and duplicate detection for chess
// positions.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Tracker records position signatures and reports repeats. It is not safe
// for concurrent use; wrap it in a SharedTracker to share across goroutines.
type Tracker struct {
	// seen maps position keys to the signatures that produced them.
	seen map[uint64][]Signature
	// exact additionally compares ply counts, so transpositions reached by
	// different move orders stay distinct.
	exact bool
	// maxCapacity bounds the number of tracked signatures; zero is unlimited.
	maxCapacity int
	duplicates  int
	tracked     int
}

// Signature identifies one position for duplicate comparison.
type Signature struct {
	// Key is the Zobrist key of the position.
	Key uint64
	// Weak is a text hash of the position fields, guarding against key
	// collisions.
	Weak uint64
	// Ply is the half-move count the position was reached at.
	Ply int
}

// Sign summarizes p for duplicate comparison.
func Sign(p *engine.Position) Signature {
	return Signature{
		Key:  PositionKey(p),
		Weak: WeakKey(p),
		Ply:  p.Ply(),
	}
}

// NewTracker creates a duplicate tracker. With exact set, positions must
// also agree on ply count to be considered repeats. maxCapacity of 0 means
// unlimited capacity.
func NewTracker(exact bool, maxCapacity int) *Tracker {
	return &Tracker{
		seen:        make(map[uint64][]Signature),
		exact:       exact,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether p repeats an already tracked position and
// records it otherwise. Once the tracker is full, new positions are no
// longer recorded, but repeats of tracked ones are still reported.
func (tr *Tracker) CheckAndAdd(p *engine.Position) bool {
	if p == nil {
		return false
	}
	sig := Sign(p)

	for _, existing := range tr.seen[sig.Key] {
		if tr.signaturesMatch(sig, existing) {
			tr.duplicates++
			return true
		}
	}

	if tr.IsFull() {
		return false
	}
	tr.seen[sig.Key] = append(tr.seen[sig.Key], sig)
	tr.tracked++
	return false
}

// signaturesMatch checks if two position signatures match.
func (tr *Tracker) signaturesMatch(a, b Signature) bool {
	// The Zobrist key already matched as the table key; the weak hash guards
	// against collisions.
	if a.Key != b.Key || a.Weak != b.Weak {
		return false
	}
	if tr.exact && a.Ply != b.Ply {
		return false
	}
	return true
}

// DuplicateCount returns the number of repeats detected.
func (tr *Tracker) DuplicateCount() int {
	return tr.duplicates
}

// UniqueCount returns the number of distinct positions tracked.
func (tr *Tracker) UniqueCount() int {
	return tr.tracked
}

// IsFull reports whether the tracker reached its capacity limit. It always
// returns false for unlimited capacity.
func (tr *Tracker) IsFull() bool {
	return tr.maxCapacity > 0 && tr.tracked >= tr.maxCapacity
}

// Reset clears all tracked positions and counters.
func (tr *Tracker) Reset() {
	tr.seen = make(map[uint64][]Signature)
	tr.duplicates = 0
	tr.tracked = 0
}
