package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/errors"
)

// Long-form move text is a brace-wrapped, " - " separated record:
//
//	{[<piece> - ]<origin> - <destination>[ - <captured>][ - <annotation>][ - <check>]}
//
// e.g. {wp - e2 - e4}, {wk - e1 - g1 - o-o}, {wp - e5 - d6 - bp - e.p.}.
const longSeparator = " - "

// Annotations of the long form.
const (
	annotationKingside  = "o-o"
	annotationQueenside = "o-o-o"
	annotationEnPassant = "e.p."
)

// FormatLong writes the long form of a move, e.g. "{wp - e7 - e8 - =q - +}".
func FormatLong(m chess.Move) string {
	parts := []string{m.Piece.Code(), m.From.String(), m.To.String()}
	if m.IsCapture() {
		parts = append(parts, m.Captured.Code())
	}
	switch m.Class {
	case chess.KingsideCastle:
		parts = append(parts, annotationKingside)
	case chess.QueensideCastle:
		parts = append(parts, annotationQueenside)
	case chess.EnPassantPawnMove:
		parts = append(parts, annotationEnPassant)
	case chess.PawnMoveWithPromotion:
		parts = append(parts, "="+string(promotionOf(m).Char()))
	}
	if suffix := m.CheckStatus.Suffix(); suffix != "" {
		parts = append(parts, suffix)
	}
	return "{" + strings.Join(parts, longSeparator) + "}"
}

// longMove is the decoded text of a long-form move.
type longMove struct {
	piece      chess.Piece
	from, to   chess.Square
	captured   chess.Piece
	annotation string
	promotion  chess.Kind
}

// decodeLong checks the long-form grammar without consulting a position.
func decodeLong(text string) (longMove, error) {
	fail := func(expected, got string) (longMove, error) {
		return longMove{}, &errors.ParseError{Err: errors.ErrInvalidSAN, Input: text, Expected: expected, Got: got}
	}

	inner := strings.TrimSpace(text)
	if len(inner) < 2 || inner[0] != '{' || inner[len(inner)-1] != '}' {
		return fail("move wrapped in braces", "")
	}
	fields := strings.Split(inner[1:len(inner)-1], longSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var lm longMove
	var err error
	i := 0

	if i < len(fields) && isPieceCode(fields[i]) {
		if lm.piece, err = chess.ParsePieceCode(fields[i]); err != nil {
			return longMove{}, err
		}
		i++
	}
	if len(fields)-i < 2 {
		return fail("origin and destination squares", fmt.Sprintf("%d fields", len(fields)))
	}
	if lm.from, err = chess.ParseSquare(strings.ToLower(fields[i])); err != nil {
		return fail("origin square", fields[i])
	}
	if lm.to, err = chess.ParseSquare(strings.ToLower(fields[i+1])); err != nil {
		return fail("destination square", fields[i+1])
	}
	i += 2

	if i < len(fields) && isPieceCode(fields[i]) {
		if lm.captured, err = chess.ParsePieceCode(fields[i]); err != nil {
			return longMove{}, err
		}
		i++
	}
	if i < len(fields) && fields[i] != "" && fields[i][0] != '+' && fields[i][0] != '#' && fields[i][0] != '$' {
		lm.annotation = strings.ToLower(fields[i])
		if err := lm.decodeAnnotation(); err != nil {
			return fail("annotation o-o, o-o-o, e.p. or =[qrbn]", fields[i])
		}
		i++
	}
	if i < len(fields) {
		if len(fields[i]) != 1 {
			return fail("check marker +, # or $", fields[i])
		}
		if _, ok := checkStatusFor(fields[i][0]); !ok {
			return fail("check marker +, # or $", fields[i])
		}
		i++
	}
	if i != len(fields) {
		return fail("end of move", fields[i])
	}
	return lm, nil
}

// decodeAnnotation validates the annotation and extracts a promotion kind.
func (lm *longMove) decodeAnnotation() error {
	switch lm.annotation {
	case annotationKingside, annotationQueenside, annotationEnPassant, "=":
		return nil
	}
	if len(lm.annotation) == 2 && lm.annotation[0] == '=' {
		kind, err := chess.KindFromChar(lm.annotation[1])
		if err == nil && kind != chess.Pawn && kind != chess.King {
			lm.promotion = kind
			return nil
		}
	}
	return errors.ErrInvalidSAN
}

// isPieceCode tells a piece code ("wp") from a square ("e2").
func isPieceCode(field string) bool {
	if len(field) != 2 || chess.IsRank(field[1]) {
		return false
	}
	_, err := chess.ColourFromChar(field[0])
	return err == nil
}

// ParseLong resolves long-form move text against a position. Every part
// the text states (piece, captured piece, annotation) must agree with the
// legal move found; the check marker is recomputed.
func ParseLong(pos chess.Position, text string) (chess.Move, error) {
	lm, err := decodeLong(text)
	if err != nil {
		return chess.Move{}, err
	}

	m, err := engine.FindMove(pos, lm.from, lm.to, lm.promotion)
	if err != nil {
		return chess.Move{}, err
	}
	if lm.piece != chess.NoPiece && lm.piece != m.Piece {
		return chess.Move{}, fmt.Errorf("%s: %v stands on %v: %w", text, m.Piece, m.From, errors.ErrIllegalMove)
	}
	if lm.captured != chess.NoPiece && lm.captured != m.Captured {
		return chess.Move{}, fmt.Errorf("%s: captures %v: %w", text, m.Captured, errors.ErrIllegalMove)
	}
	if !lm.annotationAgrees(m) {
		return chess.Move{}, fmt.Errorf("%s: annotation %q does not fit: %w", text, lm.annotation, errors.ErrIllegalMove)
	}

	m.SAN = EncodeSAN(pos, m)
	return m, nil
}

// annotationAgrees checks a stated annotation against the move class.
func (lm longMove) annotationAgrees(m chess.Move) bool {
	switch lm.annotation {
	case "":
		return true
	case annotationKingside:
		return m.Class == chess.KingsideCastle
	case annotationQueenside:
		return m.Class == chess.QueensideCastle
	case annotationEnPassant:
		return m.Class == chess.EnPassantPawnMove
	default:
		return m.IsPromotion()
	}
}
