package chess

// Board is the 8x8 placement of pieces. It is a plain value: assigning a
// Board copies it.
type Board struct {
	squares [BoardSize * BoardSize]Piece
}

// backRank is the standard arrangement of pieces on the first rank.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard chess starting placement.
func StartingBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b.Set(NewSquare(file, 0), W(backRank[file]))
		b.Set(NewSquare(file, 1), W(Pawn))
		b.Set(NewSquare(file, 6), B(Pawn))
		b.Set(NewSquare(file, 7), B(backRank[file]))
	}
	return b
}

// Get returns the piece on a square, or NoPiece when empty or off the board.
func (b Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Set places a piece on a square. Setting NoPiece clears it.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.squares[sq] = piece
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// IsEmpty reports whether the square holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == NoPiece
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	return b
}

// Occupied returns the occupied squares in rank-major order (a1, b1, ... h8).
func (b Board) Occupied() []Square {
	var squares []Square
	for sq := A1; sq <= H8; sq++ {
		if b.squares[sq] != NoPiece {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns how many of the given piece are on the board.
func (b Board) Count(piece Piece) int {
	n := 0
	for _, p := range b.squares {
		if p == piece {
			n++
		}
	}
	return n
}

// KingSquare returns the square of the colour's king, or NoSquare.
func (b Board) KingSquare(colour Colour) Square {
	king := NewPiece(colour, King)
	for sq := A1; sq <= H8; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}
