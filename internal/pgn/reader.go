// Package pgn reads and writes Portable Game Notation. Reading replays the
// main line through the game state machine; variations, comments and NAGs
// are discarded.
package pgn

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/errors"
	"github.com/lgbarn/chessnote/internal/game"
)

// moveText is one main-line move as it appeared in the input.
type moveText struct {
	text   string
	line   uint
	column uint
}

// record is the lexical content of one game before replay.
type record struct {
	headers chess.Headers
	moves   []moveText
	result  string
}

// Loader turns PGN text into games.
type Loader struct {
	cfg *config.Config
}

// NewLoader creates a loader. If cfg is nil, diagnostics are discarded.
func NewLoader(cfg *config.Config) *Loader {
	if cfg == nil {
		cfg = quietConfig()
	}
	return &Loader{cfg: cfg}
}

var defaultLoader = NewLoader(nil)

// Load reads the first game in text.
func Load(text string) (*game.Game, error) {
	return defaultLoader.Load(context.Background(), text)
}

// LoadContext is Load with a deadline: it fails with ErrTimeout once ctx
// expires.
func LoadContext(ctx context.Context, text string) (*game.Game, error) {
	return defaultLoader.Load(ctx, text)
}

// Load reads the first game in text. On failure it returns no game and an
// error naming the offending ply; nothing partially built escapes.
func (l *Loader) Load(ctx context.Context, text string) (*game.Game, error) {
	rec, err := l.scan(ctx, text)
	if err != nil {
		return nil, err
	}
	return l.replay(ctx, rec)
}

// scan lexes the tag section and the main line of one game.
func (l *Loader) scan(ctx context.Context, text string) (*record, error) {
	lexer := NewLexer(strings.NewReader(text), l.cfg)
	rec := &record{}
	inMoves := false

	for tok := lexer.NextToken(); tok.Type != EOFToken; tok = lexer.NextToken() {
		if err := ctx.Err(); err != nil {
			return nil, contextError(err, 0)
		}

		switch tok.Type {
		case TagToken:
			if inMoves {
				// The next game begins.
				return rec, nil
			}
			name := tok.Text
			value := lexer.NextToken()
			if value.Type != StringToken {
				return nil, &errors.ParseError{
					Err:      errors.ErrParseFailure,
					Input:    name,
					Column:   int(tok.Column),
					Expected: "quoted tag value",
					Got:      value.Type.String(),
				}
			}
			rec.headers.Set(name, value.Text)

		case StringToken:
			fmt.Fprintf(l.cfg.LogFile, "Missing tag name for %q on line %d.\n", tok.Text, tok.Line)

		case RAVStart:
			inMoves = true
			skipVariation(lexer)

		case MoveToken:
			inMoves = true
			rec.moves = append(rec.moves, moveText{text: tok.Text, line: tok.Line, column: tok.Column})

		case MoveNumber:
			inMoves = true

		case TerminatingResult:
			inMoves = true
			rec.result = tok.Text
		}
	}
	return rec, nil
}

// skipVariation consumes tokens up to the end of the current variation.
func skipVariation(lexer *Lexer) {
	depth := 1
	for depth > 0 {
		switch lexer.NextToken().Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken:
			return
		}
	}
}

// replay builds a game from a scanned record.
func (l *Loader) replay(ctx context.Context, rec *record) (*game.Game, error) {
	opts := []game.Option{game.WithHeaders(rec.headers)}

	var g *game.Game
	if fen, ok := rec.headers.Lookup(chess.FENTag); ok {
		var err error
		if g, err = game.NewFromFEN(fen, opts...); err != nil {
			return nil, &errors.GameError{Err: err}
		}
		if g.IsOver() {
			return g, nil
		}
	} else {
		g = game.New(opts...)
	}

	for i, mv := range rec.moves {
		if err := ctx.Err(); err != nil {
			return nil, contextError(err, i+1)
		}
		if err := g.MoveSAN(mv.text); err != nil {
			return nil, &errors.GameError{
				Err:      fmt.Errorf("line %d column %d: %w", mv.line, mv.column, err),
				PlyNum:   i + 1,
				MoveText: mv.text,
			}
		}
	}

	if !g.IsOver() {
		applyResult(g, rec.result)
	}
	return g, nil
}

// applyResult records a result token the board itself does not explain.
func applyResult(g *game.Game, result string) {
	switch result {
	case WhiteWins:
		_ = g.Resign(chess.Black)
	case BlackWins:
		_ = g.Resign(chess.White)
	case DrawResult:
		_ = g.Draw()
	}
}

// contextError maps an expired deadline to ErrTimeout.
func contextError(err error, ply int) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %v", errors.ErrTimeout, err)
	}
	return &errors.GameError{Err: err, PlyNum: ply}
}
