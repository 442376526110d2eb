package chess

import "github.com/lgbarn/chessnote/internal/errors"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square identifies one of the 64 squares, numbered rank-major from a1 (0)
// to h8 (63).
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank indices.
// It returns NoSquare when either index is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the 0-based file index (a = 0).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank index (rank 1 = 0).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// FileChar returns the file letter 'a'..'h'.
func (s Square) FileChar() byte {
	return byte('a' + s.File())
}

// RankChar returns the rank digit '1'..'8'.
func (s Square) RankChar() byte {
	return byte('1' + s.Rank())
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}

// IsFile returns true if c is a file letter.
func IsFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// IsRank returns true if c is a rank digit.
func IsRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || !IsFile(name[0]) || !IsRank(name[1]) {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: name, Expected: "file a-h and rank 1-8"}
	}
	return NewSquare(int(name[0]-'a'), int(name[1]-'1')), nil
}
