package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/errors"
)

// ParseSAN resolves SAN text against a position. The result is a legal move
// carrying its check status and canonical SAN. Text that matches no legal
// move fails with ErrNoMatchingMove, and so does a capture, check or mate
// marker the move does not live up to. Text that matches several moves
// fails with ErrAmbiguousMove; text outside the grammar fails with
// ErrInvalidSAN.
func ParseSAN(pos chess.Position, text string) (chess.Move, error) {
	mv, err := decodeSAN(text)
	if err != nil {
		return chess.Move{}, err
	}

	var matches []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if mv.matches(m) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, fmt.Errorf("%q for %v: %w", text, pos.ToMove, errors.ErrNoMatchingMove)
	case 1:
		m := engine.Annotate(pos, matches[0])
		if !mv.checkAgrees(m.CheckStatus) {
			return chess.Move{}, fmt.Errorf("%q: the move does not match its %q marker: %w", text, mv.check.Suffix(), errors.ErrNoMatchingMove)
		}
		m.SAN = EncodeSAN(pos, m)
		return m, nil
	default:
		origins := make([]string, len(matches))
		for i, m := range matches {
			origins[i] = m.From.String()
		}
		return chess.Move{}, fmt.Errorf("%q could start from %s: %w", text, strings.Join(origins, ", "), errors.ErrAmbiguousMove)
	}
}

// matches filters a legal move by everything the text specified.
func (mv sanMove) matches(m chess.Move) bool {
	if mv.castle {
		return m.IsCastle() && m.CastleSide() == mv.side
	}
	if m.IsCastle() || m.Piece.Kind() != mv.kind || m.To != mv.to {
		return false
	}
	if mv.fromFile >= 0 && m.From.File() != mv.fromFile {
		return false
	}
	if mv.fromRank >= 0 && m.From.Rank() != mv.fromRank {
		return false
	}
	if mv.enPassant && !m.IsEnPassant() {
		return false
	}
	if mv.capture && !m.IsCapture() {
		return false
	}
	if m.IsPromotion() {
		want := mv.promotion
		if want == chess.NoKind {
			want = chess.Queen
		}
		return m.Promotion == want
	}
	return mv.promotion == chess.NoKind
}

// checkAgrees reports whether a written + or # suits the move. A + on a
// mating move is accepted; the stalemate marker is not checked.
func (mv sanMove) checkAgrees(status chess.CheckStatus) bool {
	switch mv.check {
	case chess.Check:
		return status == chess.Check || status == chess.Checkmate
	case chess.Checkmate:
		return status == chess.Checkmate
	}
	return true
}

// EncodeSAN writes the shortest unambiguous SAN of a legal move played from
// pos, with a trailing + or # when it checks or mates.
func EncodeSAN(pos chess.Position, m chess.Move) string {
	var sb strings.Builder

	switch {
	case m.Class == chess.KingsideCastle:
		sb.WriteString("O-O")
	case m.Class == chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case m.Piece.Kind() == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(m.From.FileChar())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(promotionOf(m).Letter())
		}
	default:
		sb.WriteByte(m.Piece.Kind().Letter())
		sb.WriteString(disambiguation(pos, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	switch engine.Annotate(pos, m).CheckStatus {
	case chess.Checkmate:
		sb.WriteByte('#')
	case chess.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin hint needed to tell m apart from other
// legal moves of the same piece kind to the same square: file alone, then
// rank alone, then both.
func disambiguation(pos chess.Position, m chess.Move) string {
	var rivals []chess.Square
	for _, other := range engine.LegalMoves(pos) {
		if other.From != m.From && other.To == m.To && other.Piece == m.Piece && !other.IsCastle() {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File() == m.From.File()
		sameRank = sameRank || sq.Rank() == m.From.Rank()
	}
	switch {
	case !sameFile:
		return string(m.From.FileChar())
	case !sameRank:
		return string(m.From.RankChar())
	default:
		return m.From.String()
	}
}

// promotionOf returns the promoted kind, Queen when unspecified.
func promotionOf(m chess.Move) chess.Kind {
	if m.Promotion == chess.NoKind {
		return chess.Queen
	}
	return m.Promotion
}
