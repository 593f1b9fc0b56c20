package perft

import (
	"testing"

	"github.com/Kile-Asmussen/mintymacks-sub000/internal/board"
)

func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		pos := board.NewPosition()
		got := Perft(pos, tc.depth, Options{}).Total
		if got != tc.expected {
			t.Errorf("Perft(startpos, %d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestPerftStartingPositionCached(t *testing.T) {
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		pos := board.NewPosition()
		result := Perft(pos, tc.depth, Options{CacheBits: 16})
		if result.Total != tc.expected {
			t.Errorf("Perft(startpos, %d) with cache = %d, want %d", tc.depth, result.Total, tc.expected)
		}
		if result.CacheCap != 1<<16 {
			t.Errorf("CacheCap = %d, want %d", result.CacheCap, 1<<16)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"

	tests := []struct {
		depth      int
		expected   uint64
		captures   uint64
		castles    uint64
		promotions uint64
	}{
		{1, 48, 8, 2, 0},
		{2, 2039, 351, 91, 0},
		{3, 97862, 17102, 3162, 0},
	}

	for _, tc := range tests {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		result := Perft(pos, tc.depth, Options{})
		if result.Total != tc.expected {
			t.Errorf("Perft(kiwipete, %d).Total = %d, want %d", tc.depth, result.Total, tc.expected)
		}
		if result.Captures != tc.captures {
			t.Errorf("Perft(kiwipete, %d).Captures = %d, want %d", tc.depth, result.Captures, tc.captures)
		}
		if result.Castles != tc.castles {
			t.Errorf("Perft(kiwipete, %d).Castles = %d, want %d", tc.depth, result.Castles, tc.castles)
		}
		if result.Promotions != tc.promotions {
			t.Errorf("Perft(kiwipete, %d).Promotions = %d, want %d", tc.depth, result.Promotions, tc.promotions)
		}
	}
}

func TestPerftPosition3EnPassant(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"

	tests := []struct {
		depth     int
		expected  uint64
		enPassant uint64
	}{
		{1, 14, 0},
		{2, 191, 0},
		{3, 2812, 2},
		{4, 43238, 123},
	}

	for _, tc := range tests {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		result := Perft(pos, tc.depth, Options{})
		if result.Total != tc.expected {
			t.Errorf("Perft(pos3, %d).Total = %d, want %d", tc.depth, result.Total, tc.expected)
		}
		if result.EnPassant != tc.enPassant {
			t.Errorf("Perft(pos3, %d).EnPassant = %d, want %d", tc.depth, result.EnPassant, tc.enPassant)
		}
	}
}

func TestPerftByMoveSumsToTotal(t *testing.T) {
	pos := board.NewPosition()
	result := Perft(pos, 3, Options{})

	var sum uint64
	for _, n := range result.ByMove {
		sum += n
	}
	if sum != result.Total {
		t.Errorf("sum of ByMove = %d, want Total = %d", sum, result.Total)
	}
	if len(result.ByMove) != 20 {
		t.Errorf("len(ByMove) = %d, want 20 root moves", len(result.ByMove))
	}
}

func TestZobristDeltaMatchesMakeMove(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		before := pos.Hash
		delta := pos.MoveZobristDelta(m)

		undo := pos.MakeMove(m)
		if pos.Hash != before^delta {
			t.Errorf("move %v: hash after MakeMove = %x, want %x", m, pos.Hash, before^delta)
		}
		if pos.Hash != pos.ComputeHash() {
			t.Errorf("move %v: incremental hash %x disagrees with ComputeHash %x", m, pos.Hash, pos.ComputeHash())
		}
		pos.UnmakeMove(m, undo)

		if pos.Hash != before {
			t.Errorf("move %v: hash after UnmakeMove = %x, want %x", m, pos.Hash, before)
		}
	}
}
