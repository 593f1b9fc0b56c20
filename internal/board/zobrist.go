package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility, so two processes produce
// identical hashes for identical positions.
var (
	zobristPiece         [2][7][64]uint64 // [Color][PieceType][Square] - 7 to handle NoPieceType safely
	zobristEnPassant     [8]uint64        // One per file
	zobristCastlingRight [4]uint64        // One key per WK/WQ/BK/BQ right, not per 16-combination
	zobristSideToMove    uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	// Piece keys
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	// En passant keys (one per file)
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	// One key per castling right, XORed in independently rather than
	// indexed by the full 4-bit combination.
	for i := range zobristCastlingRight {
		zobristCastlingRight[i] = rng.next()
	}

	// Side to move key
	zobristSideToMove = rng.next()
}

// ZobristPiece returns the Zobrist key for a piece on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the Zobrist key for an en passant file.
func ZobristEnPassant(file int) uint64 {
	return zobristEnPassant[file]
}

// ZobristCastlingRight returns the Zobrist key for a single castling right.
// right must have exactly one bit set.
func ZobristCastlingRight(right CastlingRights) uint64 {
	for i := 0; i < 4; i++ {
		if right == 1<<uint(i) {
			return zobristCastlingRight[i]
		}
	}
	return 0
}

// zobristCastlingMask XORs together the keys of every right held in cr.
func zobristCastlingMask(cr CastlingRights) uint64 {
	var h uint64
	for i := 0; i < 4; i++ {
		if cr&(1<<uint(i)) != 0 {
			h ^= zobristCastlingRight[i]
		}
	}
	return h
}

// ZobristSideToMove returns the Zobrist key for side to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}

// ComputeHash computes the Zobrist hash for the position from scratch:
// piece-on-square keys for every occupied square, the castling-right key
// for every currently held right, the en-passant file key if set, and the
// side-to-move key when Black is to move.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= zobristPiece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastlingMask(p.CastlingRights)

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}

// ComputePawnKey computes the pawn hash key from scratch.
// Only includes pawn positions for pawn structure caching.
func (p *Position) ComputePawnKey() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		bb := p.Pieces[c][Pawn]
		for bb != 0 {
			sq := bb.PopLSB()
			key ^= zobristPiece[c][Pawn][sq]
		}
	}

	return key
}

// moveDelta is the pure, pre-mutation preview of what MakeMove is about to
// change: the piece moved, what (if anything) was captured and where, the
// rook move for castling, the new castling rights and en-passant square,
// and the Zobrist XOR mask corresponding to exactly those changes.
// MakeMove computes this once and applies both the bitboard mutation and
// the hash update from the same values, so the two can never drift apart.
type moveDelta struct {
	piece    Piece
	from, to Square

	capturedPiece Piece
	capturedSq    Square // only meaningful if capturedPiece != NoPiece

	isCastling       bool
	rookFrom, rookTo Square

	newCastlingRights CastlingRights
	newEnPassant      Square

	Hash uint64
}

// computeMoveDelta previews the effect of playing m from p without
// mutating p. MakeMove uses it internally; MoveZobristDelta exposes it for
// independent verification that the hash update and the board mutation
// agree.
func (p *Position) computeMoveDelta(m Move) moveDelta {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)

	d := moveDelta{
		piece:         piece,
		from:          from,
		to:            to,
		capturedPiece: NoPiece,
		newEnPassant:  NoSquare,
	}
	if piece == NoPiece {
		return d
	}
	pt := piece.Type()

	var hash uint64

	// Side to move always flips.
	hash ^= zobristSideToMove

	// Captures.
	if m.IsEnPassant() {
		if us == White {
			d.capturedSq = to - 8
		} else {
			d.capturedSq = to + 8
		}
		d.capturedPiece = p.PieceAt(d.capturedSq)
		hash ^= zobristPiece[them][Pawn][d.capturedSq]
	} else if captured := p.PieceAt(to); captured != NoPiece {
		d.capturedPiece = captured
		d.capturedSq = to
		hash ^= zobristPiece[them][captured.Type()][to]
	}

	// Moving piece; promotion replaces the piece placed at `to`.
	hash ^= zobristPiece[us][pt][from]
	if m.IsPromotion() {
		hash ^= zobristPiece[us][m.Promotion()][to]
	} else {
		hash ^= zobristPiece[us][pt][to]
	}

	// Castling rook.
	if m.IsCastling() {
		d.isCastling = true
		side := castleKingside
		if to < from {
			side = castleQueenside
		}
		d.rookFrom = p.Variant.RookHome[us][side]
		d.rookTo = p.Variant.RookTarget[us][side]
		hash ^= zobristPiece[us][Rook][d.rookFrom]
		hash ^= zobristPiece[us][Rook][d.rookTo]
	}

	// New castling rights: king or rook moves, or a rook getting captured
	// on its home square, each strip the corresponding right.
	newRights := p.CastlingRights
	if pt == King {
		if us == White {
			newRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			newRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		newRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		newRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		newRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		newRights &^= BlackKingSideCastle
	}
	d.newCastlingRights = newRights

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	// New en-passant square: only recorded on a double pawn push, and only
	// when an enemy pawn is actually positioned to capture it there. This
	// strict rule keeps the hash independent of the path taken to reach a
	// position.
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		epBB := SquareBB(epSquare)
		var attackerFiles Bitboard
		if us == White {
			attackerFiles = epBB.NorthWest() | epBB.NorthEast()
		} else {
			attackerFiles = epBB.SouthWest() | epBB.SouthEast()
		}
		if attackerFiles&p.Pieces[them][Pawn] != 0 {
			d.newEnPassant = epSquare
			hash ^= zobristEnPassant[epSquare.File()]
		}
	}

	hash ^= zobristCastlingMask(p.CastlingRights) ^ zobristCastlingMask(newRights)

	d.Hash = hash
	return d
}

// MoveZobristDelta returns the Zobrist XOR mask that playing m from p will
// apply to p.Hash, without mutating p.
func (p *Position) MoveZobristDelta(m Move) uint64 {
	return p.computeMoveDelta(m).Hash
}
