// Package perft counts leaf nodes of the legal-move tree rooted at a
// position, the standard oracle for move-generator correctness.
package perft

import (
	"time"

	"github.com/Kile-Asmussen/mintymacks-sub000/internal/board"
	"github.com/Kile-Asmussen/mintymacks-sub000/internal/logging"
)

var log = logging.GetLog()

// Options configures a Perft run.
type Options struct {
	// CacheBits sizes the transposition cache as 1<<CacheBits entries.
	// Zero disables the cache.
	CacheBits int
}

// Result holds the outcome of a Perft run.
type Result struct {
	Total      uint64
	ByMove     map[string]uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Elapsed    time.Duration
	CacheCap   int
	CacheUsed  int
}

// counters accumulates leaf-node statistics for one subtree.
type counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *counters) add(o counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

type cacheEntry struct {
	hash  uint64
	depth int
	c     counters
	valid bool
}

// Perft counts leaf nodes at depth below pos: Perft(pos, 0) == 1, and
// Perft(pos, d) sums perft(apply(pos, m), d-1) over every legal move m.
func Perft(pos *board.Position, depth int, opts Options) Result {
	start := time.Now()

	result := Result{ByMove: make(map[string]uint64)}
	if depth <= 0 {
		result.Total = 1
		result.Elapsed = time.Since(start)
		return result
	}

	var cache []cacheEntry
	if opts.CacheBits > 0 {
		cache = make([]cacheEntry, 1<<uint(opts.CacheBits))
	}

	moves := pos.GenerateLegalMoves()
	log.Debugf("perft: %d root moves at depth %d", moves.Len(), depth)

	var total counters
	if depth == 1 {
		// Depth-1 leaf statistics describe the root moves themselves, so
		// they are counted on pos before any move is applied.
		total = count(pos, 1, cache)
	}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if depth == 1 {
			result.ByMove[m.String()]++
			continue
		}
		undo := pos.MakeMove(m)
		leaf := count(pos, depth-1, cache)
		pos.UnmakeMove(m, undo)

		result.ByMove[m.String()] += leaf.Nodes
		total.add(leaf)
	}

	result.Total = total.Nodes
	result.Captures = total.Captures
	result.EnPassant = total.EnPassant
	result.Castles = total.Castles
	result.Promotions = total.Promotions
	result.Elapsed = time.Since(start)
	result.CacheCap = len(cache)
	result.CacheUsed = cacheOccupancy(cache)

	log.Debugf("perft: depth %d total %d nodes, cache %d/%d", depth, result.Total, result.CacheUsed, result.CacheCap)

	return result
}

// count walks the legal-move tree below pos to the given depth, consulting
// and populating cache (if non-nil) keyed by (hash, depth).
func count(pos *board.Position, depth int, cache []cacheEntry) counters {
	if depth == 0 {
		return counters{Nodes: 1}
	}

	var idx int
	if cache != nil {
		idx = int(pos.Hash % uint64(len(cache)))
		if e := cache[idx]; e.valid && e.hash == pos.Hash && e.depth == depth {
			return e.c
		}
	}

	moves := pos.GenerateLegalMoves()

	var total counters
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)

		var leaf counters
		if depth == 1 {
			leaf.Nodes = 1
			if m.IsEnPassant() {
				leaf.Captures = 1
				leaf.EnPassant = 1
			} else if m.IsCapture(pos) {
				leaf.Captures = 1
			}
			if m.IsCastling() {
				leaf.Castles = 1
			}
			if m.IsPromotion() {
				leaf.Promotions = 1
			}
		} else {
			undo := pos.MakeMove(m)
			leaf = count(pos, depth-1, cache)
			pos.UnmakeMove(m, undo)
		}

		total.add(leaf)
	}

	if cache != nil {
		cache[idx] = cacheEntry{hash: pos.Hash, depth: depth, c: total, valid: true}
	}

	return total
}

func cacheOccupancy(cache []cacheEntry) int {
	n := 0
	for _, e := range cache {
		if e.valid {
			n++
		}
	}
	return n
}
