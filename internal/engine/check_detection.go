package engine

import "github.com/lgbarn/chessnote/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could capture on sq.
func IsSquareAttacked(board chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their direction
	pawn := chess.NewPiece(byColour, chess.Pawn)
	for _, df := range []int{-1, 1} {
		if board.Get(sq.Offset(df, -byColour.Direction())) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.NewPiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.NewPiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.NewPiece(byColour, chess.Queen)
	if attackedBySlider(board, sq, chess.NewPiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(board, sq, chess.NewPiece(byColour, chess.Rook), queen, straightDirs)
}

// attackedByStep checks the fixed offsets around sq for the given piece.
func attackedByStep(board chess.Board, sq chess.Square, piece chess.Piece, offsets [][2]int) bool {
	for _, off := range offsets {
		if board.Get(sq.Offset(off[0], off[1])) == piece {
			return true
		}
	}
	return false
}

// attackedBySlider walks each ray from sq until the first occupied square.
func attackedBySlider(board chess.Board, sq chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		for to := sq.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			piece := board.Get(to)
			if piece == chess.NoPiece {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
