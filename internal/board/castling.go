package board

// CastlingVariant describes the rook/king home and target squares and the
// threat/clear masks used to validate castling for one ruleset. Position
// holds a pointer to a process-lifetime variant; castling generation reads
// its king squares and masks, and MakeMove reads its rook squares.
//
// Index convention: [Color][0=kingside, 1=queenside].
type CastlingVariant struct {
	Name string

	KingHome   [2]Square
	RookHome   [2][2]Square
	KingTarget [2][2]Square
	RookTarget [2][2]Square

	// ThreatMask is the set of squares the king must not be attacked on,
	// including its start and end square, for the corresponding castle to
	// be legal.
	ThreatMask [2][2]Bitboard
	// ClearMask is the set of squares (excluding the king and the castling
	// rook) that must be empty for the corresponding castle to be legal.
	ClearMask [2][2]Bitboard

	// CaptureOwnRook marks the Chess960-style move encoding where the king
	// "captures" its own rook to castle. Classical chess leaves this false.
	// No generation or apply code reads it: castling moves are always
	// encoded as the king moving from KingHome to KingTarget.
	CaptureOwnRook bool
}

const (
	castleKingside  = 0
	castleQueenside = 1
)

// ClassicalCastling is the standard-chess castling descriptor: king and
// rooks on their usual home squares, no Chess960 encoding.
var ClassicalCastling = &CastlingVariant{
	Name: "classical",

	KingHome: [2]Square{E1, E8},
	RookHome: [2][2]Square{
		{H1, A1},
		{H8, A8},
	},
	KingTarget: [2][2]Square{
		{G1, C1},
		{G8, C8},
	},
	RookTarget: [2][2]Square{
		{F1, D1},
		{F8, D8},
	},
	ThreatMask: [2][2]Bitboard{
		{sqMask(E1, F1, G1), sqMask(E1, D1, C1)},
		{sqMask(E8, F8, G8), sqMask(E8, D8, C8)},
	},
	ClearMask: [2][2]Bitboard{
		{sqMask(F1, G1), sqMask(B1, C1, D1)},
		{sqMask(F8, G8), sqMask(B8, C8, D8)},
	},
	CaptureOwnRook: false,
}

func sqMask(squares ...Square) Bitboard {
	var m Bitboard
	for _, sq := range squares {
		m |= SquareBB(sq)
	}
	return m
}

// rightBit returns the CastlingRights bit governing castling of the given
// color to the given side (castleKingside or castleQueenside).
func rightBit(c Color, side int) CastlingRights {
	switch {
	case c == White && side == castleKingside:
		return WhiteKingSideCastle
	case c == White && side == castleQueenside:
		return WhiteQueenSideCastle
	case c == Black && side == castleKingside:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}
