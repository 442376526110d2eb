package engine

import (
	"github.com/lgbarn/chessnote/internal/chess"
)

// IsCheckmate returns true if the side to move is in check with no legal move.
func IsCheckmate(pos chess.Position) bool {
	return IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func IsStalemate(pos chess.Position) bool {
	return !IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// HasInsufficientMaterial returns true if neither side can deliver mate by
// any sequence of legal moves:
// - K vs K
// - K+minor vs K
// - kings plus bishops that all stand on squares of one colour
func HasInsufficientMaterial(board chess.Board) bool {
	minors := 0
	knights := 0
	lightBishops, darkBishops := 0, 0

	for _, sq := range board.Occupied() {
		switch board.Get(sq).Kind() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			minors++
			knights++
		case chess.Bishop:
			minors++
			if sq.IsLight() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
	}

	if minors <= 1 {
		return true
	}
	// Same-coloured bishops can never cover the other colour's squares
	return knights == 0 && (lightBishops == 0 || darkBishops == 0)
}

// standardCounts is the per-side material of the initial position, kings excluded.
var standardCounts = []struct {
	kind  chess.Kind
	count int
}{
	{chess.Pawn, 8},
	{chess.Knight, 2},
	{chess.Bishop, 2},
	{chess.Rook, 2},
	{chess.Queen, 1},
}

// CapturedPieces infers the pieces of colour missing from the board by
// comparing against the standard set. Surplus pieces (e.g. a second queen
// after promotion) count as zero missing, never negative.
func CapturedPieces(board chess.Board, colour chess.Colour) []chess.Piece {
	var captured []chess.Piece
	for _, std := range standardCounts {
		piece := chess.NewPiece(colour, std.kind)
		present := board.Count(piece)
		if present > std.count {
			present = std.count
		}
		for i := present; i < std.count; i++ {
			captured = append(captured, piece)
		}
	}
	return captured
}
