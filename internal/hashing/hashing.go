package hashing

import (
	"github.com/lgbarn/chessnote/internal/chess"
)

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// NewSignature builds the signature of a game from its final position.
func NewSignature(final chess.Position, plies int) GameSignature {
	return GameSignature{
		Hash:     Zobrist(final),
		PlyCount: plies,
		WeakHash: WeakHash(final.Board),
	}
}

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal ply counts
	exactMatch     bool
	maxCapacity    int
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it otherwise.
// Returns true if the game is a duplicate. Once full, new signatures are
// checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.size++
	}
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactMatch || a.PlyCount == b.PlyCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
