package chess

// Move represents a single move with everything needed to replay, print
// or undo it.
type Move struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the pawn removed from beside the destination.
	Captured Piece

	// The piece kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Whether this move gives check, mate or stalemate.
	CheckStatus CheckStatus

	// The SAN text of the move, filled in once the move is recorded.
	SAN string
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true for en passant captures.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// CastleSide returns the side of a castling move.
func (m Move) CastleSide() CastleSide {
	if m.Class == QueensideCastle {
		return Queenside
	}
	return Kingside
}

// Colour returns the colour of the side making the move.
func (m Move) Colour() Colour {
	return m.Piece.Colour()
}

// String returns coordinate notation such as "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Char())
	}
	return s
}

// SameAction reports whether two moves describe the same action on the
// board, ignoring recorded annotations such as SAN text or check status.
func (m Move) SameAction(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}
