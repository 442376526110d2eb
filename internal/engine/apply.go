package engine

import "github.com/lgbarn/chessnote/internal/chess"

// Apply returns the position reached by playing m from pos. The move must
// come from the generator for pos (or FindMove); pos itself is unchanged.
func Apply(pos chess.Position, m chess.Move) chess.Position {
	next := pos
	board := &next.Board
	colour := m.Piece.Colour()

	board.Clear(m.From)
	switch m.Class {
	case chess.EnPassantPawnMove:
		board.Clear(enPassantVictim(m))
		board.Set(m.To, m.Piece)
	case chess.PawnMoveWithPromotion:
		board.Set(m.To, chess.NewPiece(colour, promotionKind(m)))
	case chess.KingsideCastle, chess.QueensideCastle:
		squares := chess.CastlingSquaresFor(colour, m.CastleSide())
		rook := board.Get(squares.RookFrom)
		board.Clear(squares.RookFrom)
		board.Set(squares.KingTo, m.Piece)
		board.Set(squares.RookTo, rook)
	default:
		board.Set(m.To, m.Piece)
	}

	next.Castling = updateCastlingRights(pos.Castling, m)

	next.EnPassant = chess.NoSquare
	if m.Piece.Kind() == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		next.EnPassant = m.From.Offset(0, colour.Direction())
	}

	if m.Piece.Kind() == chess.Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}
