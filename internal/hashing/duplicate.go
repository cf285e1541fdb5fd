package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// GameSignature identifies a game by its final position.
type GameSignature struct {
	Hash    uint64
	Ply     int
	Squares chess.Squares
	Game    int // caller supplied identifier of the first game seen
}

// DuplicateDetector tracks final positions of replayed games. Two games are
// duplicates when they end on the same occupancy with the same side to move;
// with exactMatch set their ply counts must also agree. It is safe for
// concurrent use.
type DuplicateDetector struct {
	mu             sync.RWMutex
	hashTable      map[uint64][]GameSignature
	exactMatch     bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd records board as the final position of game. If an equal
// position was recorded before, it returns that game's identifier and true.
func (d *DuplicateDetector) CheckAndAdd(game int, board *chess.Board) (int, bool) {
	if board == nil {
		return 0, false
	}

	sig := GameSignature{
		Hash:    GenerateZobristHash(board),
		Ply:     board.Ply(),
		Squares: board.Squares(),
		Game:    game,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Game, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return 0, false
}

// signaturesMatch compares the full occupancy and the side to move, so a hash
// collision never reports a false duplicate.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Squares != b.Squares || a.Ply%2 != b.Ply%2 {
		return false
	}
	return !d.exactMatch || a.Ply == b.Ply
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
