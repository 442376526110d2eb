package engine

import "github.com/lgbarn/chessnote/internal/chess"

// PseudoLegalMoves returns every move for the side to move that follows the
// movement rules of its piece, without checking whether the mover's king is
// left attacked. Castling is only included when its preconditions hold.
func PseudoLegalMoves(pos chess.Position) []chess.Move {
	var moves []chess.Move
	for _, from := range pos.Board.Occupied() {
		piece := pos.Board.Get(from)
		if piece.Colour() != pos.ToMove {
			continue
		}
		moves = appendPieceMoves(moves, pos, from, piece)
	}
	return moves
}

// appendPieceMoves generates the pseudo-legal moves of one piece.
func appendPieceMoves(moves []chess.Move, pos chess.Position, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind() {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, from, piece)
	case chess.Knight:
		return appendStepMoves(moves, pos.Board, from, piece, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, pos.Board, from, piece, diagonalDirs)
	case chess.Rook:
		return appendSlidingMoves(moves, pos.Board, from, piece, straightDirs)
	case chess.Queen:
		moves = appendSlidingMoves(moves, pos.Board, from, piece, diagonalDirs)
		return appendSlidingMoves(moves, pos.Board, from, piece, straightDirs)
	case chess.King:
		moves = appendStepMoves(moves, pos.Board, from, piece, kingOffsets)
		return appendCastles(moves, pos, from, piece)
	}
	return moves
}

// appendStepMoves handles knights and kings: one jump per offset.
func appendStepMoves(moves []chess.Move, board chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to == chess.NoSquare {
			continue
		}
		target := board.Get(to)
		if target != chess.NoPiece && target.Colour() == piece.Colour() {
			continue
		}
		moves = append(moves, chess.Move{Class: chess.PieceMove, From: from, To: to, Piece: piece, Captured: target})
	}
	return moves
}

// appendSlidingMoves walks each ray until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, board chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if target == chess.NoPiece {
				moves = append(moves, chess.Move{Class: chess.PieceMove, From: from, To: to, Piece: piece})
				continue
			}
			if target.Colour() != piece.Colour() {
				moves = append(moves, chess.Move{Class: chess.PieceMove, From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}
