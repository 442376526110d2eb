// Package notation converts single moves between text and chess.Move:
// Standard Algebraic Notation and the long-form machine move text.
package notation

import (
	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/errors"
)

// sanMove holds what the text of a SAN move says, before it is matched
// against a position.
type sanMove struct {
	castle    bool
	side      chess.CastleSide
	kind      chess.Kind
	fromFile  int // -1 when absent
	fromRank  int // -1 when absent
	to        chess.Square
	capture   bool
	promotion chess.Kind
	enPassant bool
	check     chess.CheckStatus
}

// isPieceLetter returns the kind for an uppercase SAN piece letter.
func isPieceLetter(c byte) chess.Kind {
	switch c {
	case 'P':
		return chess.Pawn
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'R':
		return chess.Rook
	case 'Q':
		return chess.Queen
	case 'K':
		return chess.King
	}
	return chess.NoKind
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == '-'
}

// checkStatusFor maps a trailing suffix character to a status.
func checkStatusFor(c byte) (chess.CheckStatus, bool) {
	switch c {
	case '+':
		return chess.Check, true
	case '#':
		return chess.Checkmate, true
	case '$':
		return chess.Stalemate, true
	}
	return chess.NoCheck, false
}

// decodeSAN scans SAN text in a single pass from both ends. It accepts
//
//	[PNBRQK][file][rank][x|X|-]<file><rank>[=NBRQ| e.p.][+|#|$]
//
// and the castling tokens O-O and O-O-O (zeros also accepted).
func decodeSAN(text string) (sanMove, error) {
	mv := sanMove{kind: chess.Pawn, fromFile: -1, fromRank: -1, to: chess.NoSquare}
	fail := func(column int, expected string) (sanMove, error) {
		return sanMove{}, &errors.ParseError{Err: errors.ErrInvalidSAN, Input: text, Column: column, Expected: expected}
	}

	end := len(text)
	if end > 0 {
		if status, ok := checkStatusFor(text[end-1]); ok {
			mv.check = status
			end--
		}
	}
	body := text[:end]

	switch body {
	case "O-O", "0-0":
		mv.castle, mv.side, mv.kind = true, chess.Kingside, chess.King
		return mv, nil
	case "O-O-O", "0-0-0":
		mv.castle, mv.side, mv.kind = true, chess.Queenside, chess.King
		return mv, nil
	}

	start := 0
	if start < end {
		if kind := isPieceLetter(body[0]); kind != chess.NoKind {
			mv.kind = kind
			start++
		}
	}

	// Suffixes after the destination square
	switch {
	case end-start >= 4 && body[end-4:] == "e.p.":
		mv.enPassant = true
		end -= 4
		if end > start && body[end-1] == ' ' {
			end--
		}
	case end-start >= 2 && body[end-2] == '=':
		if mv.promotion = isPieceLetter(body[end-1]); mv.promotion == chess.NoKind || mv.promotion == chess.Pawn || mv.promotion == chess.King {
			return fail(end, "promotion piece N, B, R or Q")
		}
		end -= 2
	case end-start >= 3 && chess.IsRank(body[end-2]) && isPieceLetter(body[end-1]) != chess.NoKind:
		// e8Q without the equals sign
		if mv.promotion = isPieceLetter(body[end-1]); mv.promotion == chess.Pawn || mv.promotion == chess.King {
			return fail(end, "promotion piece N, B, R or Q")
		}
		end--
	}
	if (mv.promotion != chess.NoKind || mv.enPassant) && mv.kind != chess.Pawn {
		return fail(start, "pawn move")
	}

	// Destination square
	if end-start < 2 || !chess.IsFile(body[end-2]) || !chess.IsRank(body[end-1]) {
		return fail(end, "destination square")
	}
	mv.to = chess.NewSquare(int(body[end-2]-'a'), int(body[end-1]-'1'))
	end -= 2

	// Optional capture marker, then rank and file hints
	if end > start && isCapture(body[end-1]) {
		mv.capture = body[end-1] != '-'
		end--
	}
	if end > start && chess.IsRank(body[end-1]) {
		mv.fromRank = int(body[end-1] - '1')
		end--
	}
	if end > start && chess.IsFile(body[end-1]) {
		mv.fromFile = int(body[end-1] - 'a')
		end--
	}
	if end != start {
		return fail(start+1, "piece letter, origin hint or capture marker")
	}
	return mv, nil
}
