package engine

import "github.com/lgbarn/chessnote/internal/chess"

// pawnRanks returns the starting and promotion rank indices for a colour.
func pawnRanks(colour chess.Colour) (start, last int) {
	if colour == chess.White {
		return 1, 7
	}
	return 6, 0
}

// appendPawnMoves generates pushes, captures and en passant for one pawn.
func appendPawnMoves(moves []chess.Move, pos chess.Position, from chess.Square, pawn chess.Piece) []chess.Move {
	colour := pawn.Colour()
	dir := colour.Direction()
	startRank, _ := pawnRanks(colour)

	// Forward pushes go only through empty squares
	if one := from.Offset(0, dir); one != chess.NoSquare && pos.Board.IsEmpty(one) {
		moves = appendPawnAdvance(moves, from, one, pawn, chess.NoPiece)
		if from.Rank() == startRank {
			if two := from.Offset(0, 2*dir); pos.Board.IsEmpty(two) {
				moves = append(moves, chess.Move{Class: chess.PawnMove, From: from, To: two, Piece: pawn})
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := pos.Board.Get(to)
		switch {
		case target != chess.NoPiece && target.Colour() != colour:
			moves = appendPawnAdvance(moves, from, to, pawn, target)
		case target == chess.NoPiece && to == pos.EnPassant:
			victim := pos.Board.Get(to.Offset(0, -dir))
			if victim == chess.NewPiece(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{
					Class:    chess.EnPassantPawnMove,
					From:     from,
					To:       to,
					Piece:    pawn,
					Captured: victim,
				})
			}
		}
	}
	return moves
}

// appendPawnAdvance adds a pawn move, expanding it into one move per
// promotion kind when it reaches the last rank.
func appendPawnAdvance(moves []chess.Move, from, to chess.Square, pawn, captured chess.Piece) []chess.Move {
	_, lastRank := pawnRanks(pawn.Colour())
	if to.Rank() != lastRank {
		return append(moves, chess.Move{Class: chess.PawnMove, From: from, To: to, Piece: pawn, Captured: captured})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{
			Class:     chess.PawnMoveWithPromotion,
			From:      from,
			To:        to,
			Piece:     pawn,
			Captured:  captured,
			Promotion: kind,
		})
	}
	return moves
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: behind the destination from the mover's point of view.
func enPassantVictim(m chess.Move) chess.Square {
	return m.To.Offset(0, -m.Piece.Colour().Direction())
}

// promotionKind returns the kind a promoting pawn becomes, Queen by default.
func promotionKind(m chess.Move) chess.Kind {
	if m.Promotion == chess.NoKind {
		return chess.Queen
	}
	return m.Promotion
}
