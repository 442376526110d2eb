// Package engine implements the rules of chess over chess.Position values:
// move generation, legality, move application, end-of-game tests and the
// FEN codec.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Snapshot is a parsed FEN: the position plus the captured-piece
// inventories inferred from its placement.
type Snapshot struct {
	Position      chess.Position
	WhiteCaptured []chess.Piece // white pieces missing from the board
	BlackCaptured []chess.Piece // black pieces missing from the board
}

// ParseSnapshot parses a FEN string and infers both captured inventories.
func ParseSnapshot(fen string) (Snapshot, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Position:      pos,
		WhiteCaptured: CapturedPieces(pos.Board, chess.White),
		BlackCaptured: CapturedPieces(pos.Board, chess.Black),
	}, nil
}

// ParseFEN parses the six FEN fields into a position.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return chess.Position{}, fenError(fen, "six space-separated fields", fmt.Sprintf("%d fields", len(parts)))
	}

	pos := chess.Position{EnPassant: chess.NoSquare}
	var err error

	if pos.Board, err = parsePiecePositions(fen, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if pos.ToMove, err = parseSideToMove(fen, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if pos.Castling, err = parseCastlingRights(fen, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if pos.EnPassant, err = parseEnPassant(fen, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if pos.HalfmoveClock, pos.MoveNumber, err = parseClocks(fen, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// fenError builds the structural error for a FEN field.
func fenError(fen, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: expected, Got: got}
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func parsePiecePositions(fen, field string) (chess.Board, error) {
	var board chess.Board

	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return board, fenError(fen, "8 ranks separated by /", fmt.Sprintf("%d ranks", len(ranks)))
	}

	for i, text := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := chess.PieceFromFEN(c)
			if err != nil {
				return board, fenError(fen, "piece letter or digit 1-8", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return board, fenError(fen, "rank "+strconv.Itoa(rank+1)+" to cover 8 files", "more than 8 files")
			}
			board.Set(chess.NewSquare(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return board, fenError(fen, "rank "+strconv.Itoa(rank+1)+" to cover 8 files", strconv.Itoa(file)+" files")
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(fen, field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.NoColour, fenError(fen, "side to move w or b", field)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(fen, field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}
	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		var r chess.CastlingRights
		switch field[i] {
		case 'K':
			r = chess.WhiteKingside
		case 'Q':
			r = chess.WhiteQueenside
		case 'k':
			r = chess.BlackKingside
		case 'q':
			r = chess.BlackQueenside
		default:
			return chess.NoCastling, fenError(fen, "castling rights from KQkq or -", field)
		}
		if rights&r != 0 {
			return chess.NoCastling, fenError(fen, "each castling right at most once", field)
		}
		rights |= r
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(fen, field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	if len(field) != 2 || !chess.IsFile(field[0]) || (field[1] != '3' && field[1] != '6') {
		return chess.NoSquare, fenError(fen, "en passant square on rank 3 or 6, or -", field)
	}
	return chess.ParseSquare(field)
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(fen, halfmove, fullmove string) (int, int, error) {
	half, err := strconv.Atoi(halfmove)
	if err != nil || half < 0 || !isDigits(halfmove) {
		return 0, 0, fenError(fen, "non-negative halfmove clock", halfmove)
	}
	full, err := strconv.Atoi(fullmove)
	if err != nil || full < 1 || !isDigits(fullmove) {
		return 0, 0, fenError(fen, "positive fullmove number", fullmove)
	}
	return half, full, nil
}

// isDigits rejects signs that strconv.Atoi would accept.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ToFEN converts a position to a FEN string.
func ToFEN(pos chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Char())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the placement, collapsing empty runs to digits.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
