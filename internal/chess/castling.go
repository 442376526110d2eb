package chess

import "strings"

// CastleSide distinguishes the two castling directions.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the single right for a colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether the colour may still castle on the given side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	return c&CastlingRight(colour, side) != 0
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// WithoutColour returns the rights with both of the colour's options removed.
func (c CastlingRights) WithoutColour(colour Colour) CastlingRights {
	return c.Without(CastlingRight(colour, Kingside) | CastlingRight(colour, Queenside))
}

// String returns the FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, opt := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c&opt.right != 0 {
			sb.WriteByte(opt.letter)
		}
	}
	return sb.String()
}

// CastlingSquares holds the fixed squares involved in one castling move.
type CastlingSquares struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square
	// Between must be empty; KingPath must not be attacked.
	Between  []Square
	KingPath []Square
}

var castlingSquares = map[CastlingRights]CastlingSquares{
	WhiteKingside:  {E1, G1, H1, F1, []Square{F1, G1}, []Square{E1, F1, G1}},
	WhiteQueenside: {E1, C1, A1, D1, []Square{B1, C1, D1}, []Square{E1, D1, C1}},
	BlackKingside:  {E8, G8, H8, F8, []Square{F8, G8}, []Square{E8, F8, G8}},
	BlackQueenside: {E8, C8, A8, D8, []Square{B8, C8, D8}, []Square{E8, D8, C8}},
}

// CastlingSquaresFor returns the squares used when colour castles on side.
func CastlingSquaresFor(colour Colour, side CastleSide) CastlingSquares {
	return castlingSquares[CastlingRight(colour, side)]
}
