// Package chess provides the value types shared by the rules engine and the
// notation codecs: colours, piece kinds, pieces, squares, boards and moves.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NoColour // absent colour, e.g. the winner of a drawn game
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Char returns the single character code of a colour ('w' or 'b').
func (c Colour) Char() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourFromChar converts 'w' or 'b' (either case) to a Colour.
func ColourFromChar(c byte) (Colour, error) {
	switch c {
	case 'w', 'W':
		return White, nil
	case 'b', 'B':
		return Black, nil
	}
	return NoColour, fmt.Errorf("colour %q: %w", c, errors.ErrInvalidPiece)
}

// Direction returns +1 for White, -1 for Black (pawn direction in ranks).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase SAN letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Char returns the lowercase character code of a kind.
func (k Kind) Char() byte {
	return k.Letter() | 0x20
}

// KindFromChar converts a piece letter (either case) to a Kind.
func KindFromChar(c byte) (Kind, error) {
	switch c | 0x20 {
	case 'p':
		return Pawn, nil
	case 'n':
		return Knight, nil
	case 'b':
		return Bishop, nil
	case 'r':
		return Rook, nil
	case 'q':
		return Queen, nil
	case 'k':
		return King, nil
	}
	return NoKind, fmt.Errorf("piece letter %q: %w", c, errors.ErrInvalidPiece)
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// CheckStatus marks the effect of a move on the opponent.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
	Stalemate // the opponent has no legal reply and is not in check
)

// Suffix returns the notation suffix for the status.
func (s CheckStatus) Suffix() string {
	switch s {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	case Stalemate:
		return "$"
	default:
		return ""
	}
}
