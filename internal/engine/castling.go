package engine

import "github.com/lgbarn/chessnote/internal/chess"

// appendCastles adds the castling moves whose preconditions hold.
func appendCastles(moves []chess.Move, pos chess.Position, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour()
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		squares := chess.CastlingSquaresFor(colour, side)
		if from != squares.KingFrom || !canCastle(pos, colour, side) {
			continue
		}
		class := chess.KingsideCastle
		if side == chess.Queenside {
			class = chess.QueensideCastle
		}
		moves = append(moves, chess.Move{Class: class, From: squares.KingFrom, To: squares.KingTo, Piece: king})
	}
	return moves
}

// canCastle checks the right is still held, king and rook are on their home
// squares, the squares between them are empty, and no square the king
// crosses (origin and destination included) is attacked.
func canCastle(pos chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	if !pos.Castling.Has(colour, side) {
		return false
	}
	squares := chess.CastlingSquaresFor(colour, side)
	if pos.Board.Get(squares.KingFrom) != chess.NewPiece(colour, chess.King) ||
		pos.Board.Get(squares.RookFrom) != chess.NewPiece(colour, chess.Rook) {
		return false
	}
	for _, sq := range squares.Between {
		if !pos.Board.IsEmpty(sq) {
			return false
		}
	}
	for _, sq := range squares.KingPath {
		if IsSquareAttacked(pos.Board, sq, colour.Opposite()) {
			return false
		}
	}
	return true
}

// rookHomeRight returns the right tied to a rook's home square.
func rookHomeRight(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.H1:
		return chess.WhiteKingside
	case chess.A1:
		return chess.WhiteQueenside
	case chess.H8:
		return chess.BlackKingside
	case chess.A8:
		return chess.BlackQueenside
	default:
		return chess.NoCastling
	}
}

// updateCastlingRights removes rights lost by a move: any king move, any
// move away from a rook home square, and any capture on one.
func updateCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	if m.Piece.Kind() == chess.King {
		rights = rights.WithoutColour(m.Piece.Colour())
	}
	return rights.Without(rookHomeRight(m.From) | rookHomeRight(m.To))
}
