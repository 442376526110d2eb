package chess

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/errors"
)

// Piece is a coloured piece. The zero value is NoPiece (an empty square).
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// pieceShift is used for encoding coloured pieces.
const pieceShift = 1

// NewPiece creates a coloured piece value.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece(uint8(kind)<<pieceShift | uint8(colour&1))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Colour extracts the colour of the piece.
func (p Piece) Colour() Colour {
	if p == NoPiece {
		return NoColour
	}
	return Colour(p & 0x01)
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	return Kind(p >> pieceShift)
}

// IsEmpty returns true for NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Code returns the two-character short code, e.g. "wp" or "bk".
func (p Piece) Code() string {
	if p == NoPiece {
		return "--"
	}
	return string([]byte{p.Colour().Char(), p.Kind().Char()})
}

// String returns the short code of the piece.
func (p Piece) String() string {
	return p.Code()
}

// FENChar returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENChar() byte {
	if p.Colour() == White {
		return p.Kind().Letter()
	}
	return p.Kind().Char()
}

// ParsePieceCode parses a short code such as "wp" or "BQ".
func ParsePieceCode(code string) (Piece, error) {
	if len(code) != 2 {
		return NoPiece, &errors.ParseError{Err: errors.ErrInvalidPiece, Input: code, Expected: "two characters"}
	}
	colour, err := ColourFromChar(code[0])
	if err != nil {
		return NoPiece, &errors.ParseError{Err: err, Input: code, Column: 1}
	}
	kind, err := KindFromChar(code[1])
	if err != nil {
		return NoPiece, &errors.ParseError{Err: err, Input: code, Column: 2}
	}
	return NewPiece(colour, kind), nil
}

// PieceFromFEN converts a FEN letter to a piece, uppercase being White.
func PieceFromFEN(c byte) (Piece, error) {
	kind, err := KindFromChar(c)
	if err != nil {
		return NoPiece, fmt.Errorf("FEN piece: %w", err)
	}
	if c >= 'a' && c <= 'z' {
		return NewPiece(Black, kind), nil
	}
	return NewPiece(White, kind), nil
}
