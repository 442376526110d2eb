package testutil

import (
	"testing"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/game"
	"github.com/lgbarn/chessnote/internal/pgn"
)

// MustPosition parses a FEN string and fails the test if it is invalid.
func MustPosition(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return pos
}

// MustGame starts a game at fen (the standard position when empty) and
// plays the SAN moves in order.
func MustGame(t testing.TB, fen string, moves ...string) *game.Game {
	t.Helper()
	g := game.New()
	if fen != "" {
		var err error
		if g, err = game.NewFromFEN(fen); err != nil {
			t.Fatalf("bad FEN %q: %v", fen, err)
		}
	}
	for i, m := range moves {
		if err := g.MoveSAN(m); err != nil {
			t.Fatalf("ply %d %s: %v", i+1, m, err)
		}
	}
	return g
}

// MustLoad loads the first game of a PGN text and fails the test on error.
func MustLoad(t testing.TB, text string) *game.Game {
	t.Helper()
	g, err := pgn.Load(text)
	if err != nil {
		t.Fatalf("failed to load game:\n%s\n%v", text, err)
	}
	return g
}

// SANs lists the SAN of every move in a game's history.
func SANs(g *game.Game) []string {
	history := g.History()
	out := make([]string, len(history))
	for i, m := range history {
		out[i] = m.SAN
	}
	return out
}
