package board

import "testing"

func TestCastlingGenerationUsesVariantMasks(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenerateLegalMoves()

	wantKingside := NewCastling(E1, G1)
	wantQueenside := NewCastling(E1, C1)

	if !moves.Contains(wantKingside) {
		t.Errorf("expected kingside castling %v among legal moves", wantKingside)
	}
	if !moves.Contains(wantQueenside) {
		t.Errorf("expected queenside castling %v among legal moves", wantQueenside)
	}
}

func TestCastlingBlockedByThreatSquare(t *testing.T) {
	// Black rook on f8 attacks f1, through which the white king must pass.
	pos, err := ParseFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	if moves.Contains(NewCastling(E1, G1)) {
		t.Errorf("kingside castling should be illegal: f1 is attacked")
	}
	if !moves.Contains(NewCastling(E1, C1)) {
		t.Errorf("queenside castling should still be legal")
	}
}

func TestCastlingBlockedByOccupiedSquare(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R2BK2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	if moves.Contains(NewCastling(E1, C1)) {
		t.Errorf("queenside castling should be illegal: d1 is occupied")
	}
	if !moves.Contains(NewCastling(E1, G1)) {
		t.Errorf("kingside castling should still be legal")
	}
}

func TestStrictEnPassantNotRecordedWithoutCapturer(t *testing.T) {
	// Lone white pawn double-pushes with no black pawn adjacent to capture
	// it en passant; the strict rule must leave EnPassant unset so the
	// hash stays path-independent.
	pos, err := ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var push Move
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 && m.To() == E4 {
			push = m
		}
	}
	if push == NoMove {
		t.Fatal("expected e2e4 among legal moves")
	}

	undo := pos.MakeMove(push)
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare (no black pawn can capture)", pos.EnPassant)
	}
	if pos.Hash != pos.ComputeHash() {
		t.Errorf("incremental hash %x disagrees with ComputeHash %x", pos.Hash, pos.ComputeHash())
	}
	pos.UnmakeMove(push, undo)
}

func TestStrictEnPassantRecordedWithCapturer(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var push Move
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 && m.To() == E4 {
			push = m
		}
	}
	if push == NoMove {
		t.Fatal("expected e2e4 among legal moves")
	}

	pos.MakeMove(push)
	if pos.EnPassant != E3 {
		t.Errorf("EnPassant = %v, want e3", pos.EnPassant)
	}
	if pos.Hash != pos.ComputeHash() {
		t.Errorf("incremental hash %x disagrees with ComputeHash %x", pos.Hash, pos.ComputeHash())
	}
}
