package engine

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/errors"
)

// LegalMoves returns every legal move for the side to move, in generation
// order (origin squares rank-major).
func LegalMoves(pos chess.Position) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(pos) {
		if tryMove(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
func LegalMovesFrom(pos chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.Get(from)
	if piece == chess.NoPiece || piece.Colour() != pos.ToMove {
		return nil
	}
	var legal []chess.Move
	for _, m := range appendPieceMoves(nil, pos, from, piece) {
		if tryMove(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos chess.Position) bool {
	for _, from := range pos.Board.Occupied() {
		piece := pos.Board.Get(from)
		if piece.Colour() != pos.ToMove {
			continue
		}
		for _, m := range appendPieceMoves(nil, pos, from, piece) {
			if tryMove(pos, m) {
				return true
			}
		}
	}
	return false
}

// tryMove plays the move on a copy and reports whether the mover's king is safe.
func tryMove(pos chess.Position, m chess.Move) bool {
	return !IsInCheck(Apply(pos, m).Board, m.Piece.Colour())
}

// FindMove validates a move given by origin, destination and an optional
// promotion kind. A promotion without an explicit kind becomes a queen.
// The returned move carries its check status.
func FindMove(pos chess.Position, from, to chess.Square, promotion chess.Kind) (chess.Move, error) {
	piece := pos.Board.Get(from)
	if piece == chess.NoPiece {
		return chess.Move{}, fmt.Errorf("no piece on %v: %w", from, errors.ErrIllegalMove)
	}
	if piece.Colour() != pos.ToMove {
		return chess.Move{}, fmt.Errorf("%v on %v cannot move, %v to play: %w", piece, from, pos.ToMove, errors.ErrIllegalMove)
	}

	want := promotion
	if want == chess.NoKind {
		want = chess.Queen
	}
	for _, m := range LegalMovesFrom(pos, from) {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != want {
			continue
		}
		return Annotate(pos, m), nil
	}
	return chess.Move{}, fmt.Errorf("%v from %v to %v: %w", piece, from, to, errors.ErrIllegalMove)
}

// Annotate sets the check status of m from the position it leads to.
func Annotate(pos chess.Position, m chess.Move) chess.Move {
	next := Apply(pos, m)
	inCheck := IsInCheck(next.Board, next.ToMove)
	hasMoves := HasLegalMoves(next)
	switch {
	case inCheck && !hasMoves:
		m.CheckStatus = chess.Checkmate
	case inCheck:
		m.CheckStatus = chess.Check
	case !hasMoves:
		m.CheckStatus = chess.Stalemate
	default:
		m.CheckStatus = chess.NoCheck
	}
	return m
}
