package chess

// Position is a complete snapshot of the game context: placement, side to
// move, castling rights, en passant target and the two clocks. It is the
// unit the FEN codec reads and writes and the unit the rules engine
// transforms. Positions are values; applying a move yields a new one.
type Position struct {
	Board         Board
	ToMove        Colour
	Castling      CastlingRights
	EnPassant     Square // NoSquare when no double push just happened
	HalfmoveClock int
	MoveNumber    int
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	return Position{
		Board:      StartingBoard(),
		ToMove:     White,
		Castling:   AllCastling,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// RepetitionKey is the subset of a position compared for repetition:
// placement, side to move, castling rights and en passant target.
type RepetitionKey struct {
	Board     Board
	ToMove    Colour
	Castling  CastlingRights
	EnPassant Square
}

// Key returns the repetition key of the position.
func (p Position) Key() RepetitionKey {
	return RepetitionKey{
		Board:     p.Board,
		ToMove:    p.ToMove,
		Castling:  p.Castling,
		EnPassant: p.EnPassant,
	}
}
