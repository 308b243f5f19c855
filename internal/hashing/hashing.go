// Package hashing provides position hashing and a position index used to
// spot positions that have already been seen.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PositionIndex records which games reached which positions.
type PositionIndex struct {
	// hashTable maps a Zobrist hash to every occurrence recorded for it
	hashTable map[uint64][]Occurrence
	// duplicateCount tracks number of repeats found
	duplicateCount int
	// maxCapacity limits the number of stored occurrences (0 = unlimited)
	maxCapacity int
	// count is the number of stored occurrences
	count int
}

// Occurrence identifies one place a position was reached.
type Occurrence struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint64
	// Source names where the position came from, e.g. a batch line
	Source string
}

// NewPositionIndex creates an empty index. maxCapacity of 0 means
// unlimited capacity.
func NewPositionIndex(maxCapacity int) *PositionIndex {
	return &PositionIndex{
		hashTable:   make(map[uint64][]Occurrence),
		maxCapacity: maxCapacity,
	}
}

// NewOccurrence describes board as reached from source.
func NewOccurrence(board *chess.Board, source string) Occurrence {
	return Occurrence{
		Hash:     Zobrist(board),
		WeakHash: WeakHash(board),
		Source:   source,
	}
}

// CheckAndAdd reports whether the position in occ was already recorded and
// records it if not. Once the index is full new positions are reported
// as unseen but not stored.
func (x *PositionIndex) CheckAndAdd(occ Occurrence) bool {
	if x.lookup(occ) != nil {
		x.duplicateCount++
		return true
	}
	if x.IsFull() {
		return false
	}
	x.hashTable[occ.Hash] = append(x.hashTable[occ.Hash], occ)
	x.count++
	return false
}

// Lookup returns the first recorded occurrence matching occ.
func (x *PositionIndex) Lookup(occ Occurrence) (Occurrence, bool) {
	if found := x.lookup(occ); found != nil {
		return *found, true
	}
	return Occurrence{}, false
}

func (x *PositionIndex) lookup(occ Occurrence) *Occurrence {
	existing := x.hashTable[occ.Hash]
	for i := range existing {
		if existing[i].WeakHash == occ.WeakHash {
			return &existing[i]
		}
	}
	return nil
}

// DuplicateCount returns the number of repeats detected.
func (x *PositionIndex) DuplicateCount() int {
	return x.duplicateCount
}

// UniqueCount returns the number of distinct positions stored.
func (x *PositionIndex) UniqueCount() int {
	return x.count
}

// IsFull returns true if the index has reached its capacity limit.
func (x *PositionIndex) IsFull() bool {
	return x.maxCapacity > 0 && x.count >= x.maxCapacity
}
