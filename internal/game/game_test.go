package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	chesserrors "github.com/lgbarn/chessnote/internal/errors"
)

func play(t *testing.T, g *Game, sans ...string) {
	t.Helper()
	for _, san := range sans {
		require.NoError(t, g.MoveSAN(san), "move %s", san)
	}
}

func TestNewGame(t *testing.T) {
	g := New()
	assert.Equal(t, engine.InitialFEN, g.FEN())
	assert.Equal(t, chess.White, g.Turn())
	assert.False(t, g.LoadedFromFEN())
	assert.False(t, g.IsOver())
	assert.Equal(t, "*", g.Result())
	assert.Len(t, g.LegalMoves(), 20)
	assert.Empty(t, g.CapturedPieces(chess.White))
}

func TestScholarsMate(t *testing.T) {
	g := New()
	play(t, g, "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	info, ok := g.EndGame()
	require.True(t, ok)
	assert.Equal(t, Checkmate, info.Type)
	assert.Equal(t, chess.White, info.Winner)
	assert.Equal(t, "1-0", g.Result())
	assert.True(t, g.IsCheck())
	assert.Equal(t, "Qxf7#", g.History()[6].SAN)
	assert.Equal(t, []chess.Piece{chess.B(chess.Pawn)}, g.CapturedPieces(chess.Black))

	err := g.MoveSAN("Ke7")
	assert.True(t, errors.Is(err, chesserrors.ErrGameOver))
	assert.True(t, errors.Is(err, chesserrors.ErrIllegalMove))
}

func TestEndingsFromFEN(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		want   EndgameType
		winner chess.Colour
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, chess.NoColour},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Checkmate, chess.Black},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", InsufficientMaterial, chess.NoColour},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", InsufficientMaterial, chess.NoColour},
		{"clock expired", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", Move50Rule, chess.NoColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewFromFEN(tt.fen)
			require.NoError(t, err)
			assert.True(t, g.LoadedFromFEN())

			info, ok := g.EndGame()
			require.True(t, ok)
			assert.Equal(t, tt.want, info.Type)
			assert.Equal(t, tt.winner, info.Winner)
			assert.Empty(t, g.LegalMoves())

			for _, m := range engine.LegalMoves(g.Position()) {
				assert.True(t, errors.Is(g.Move(m), chesserrors.ErrGameOver))
			}
		})
	}
}

func TestStalemateRejectsMoves(t *testing.T) {
	g, err := NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, errors.Is(g.MoveSAN("Kg8"), chesserrors.ErrGameOver))
	assert.Equal(t, "1/2-1/2", g.Result())
	assert.Equal(t, 0, g.Len())
}

func TestFiftyMoveRule(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 98 80")
	require.NoError(t, err)

	play(t, g, "Ra2")
	assert.False(t, g.IsOver())
	play(t, g, "Kd7")

	info, ok := g.EndGame()
	require.True(t, ok)
	assert.Equal(t, Move50Rule, info.Type)
}

func TestPawnMoveResetsClock(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/4P3/R3K3 w - - 99 80")
	require.NoError(t, err)
	play(t, g, "e4")
	assert.False(t, g.IsOver())
	assert.Equal(t, 0, g.Position().HalfmoveClock)
}

func TestThreefoldRepetition(t *testing.T) {
	g := New()
	play(t, g, "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1")
	assert.False(t, g.IsOver())

	play(t, g, "Ng8")
	info, ok := g.EndGame()
	require.True(t, ok)
	assert.Equal(t, Repetition, info.Type)
	assert.True(t, info.IsDraw())
}

func TestRepetitionNeedsSameCastlingRights(t *testing.T) {
	g, err := NewFromFEN("r3k3/8/8/8/8/8/8/4K2R w Kq - 0 1")
	require.NoError(t, err)
	// The first rook move gives up the rights, so the later positions
	// differ from the start.
	play(t, g, "Rh2", "Ra7", "Rh1", "Ra8", "Rh2", "Ra7", "Rh1", "Ra8")
	assert.False(t, g.IsOver())

	// Same placement and turn as after the first Rh2, but without rights.
	play(t, g, "Rh2")
	assert.False(t, g.IsOver())

	play(t, g, "Ra7")
	info, ok := g.EndGame()
	require.True(t, ok)
	assert.Equal(t, Repetition, info.Type)
}

func TestInsufficientMaterialAfterCapture(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/3r4/2B1K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, g.IsOver())

	play(t, g, "Kxd2")
	info, ok := g.EndGame()
	require.True(t, ok)
	assert.Equal(t, InsufficientMaterial, info.Type)
}

func TestExternalEndings(t *testing.T) {
	tests := []struct {
		name   string
		end    func(*Game) error
		want   EndgameType
		result string
	}{
		{"white resigns", func(g *Game) error { return g.Resign(chess.White) }, Resigned, "0-1"},
		{"black resigns", func(g *Game) error { return g.Resign(chess.Black) }, Resigned, "1-0"},
		{"black flag falls", func(g *Game) error { return g.Timeout(chess.Black) }, Timeout, "1-0"},
		{"draw agreed", func(g *Game) error { return g.Draw() }, DrawDeclared, "1/2-1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			play(t, g, "d4", "d5")
			require.NoError(t, tt.end(g))

			info, ok := g.EndGame()
			require.True(t, ok)
			assert.Equal(t, tt.want, info.Type)
			assert.Equal(t, tt.result, g.Result())

			assert.True(t, errors.Is(g.Draw(), chesserrors.ErrGameOver))
			assert.True(t, errors.Is(g.MoveSAN("e4"), chesserrors.ErrGameOver))
		})
	}
}

func TestFailedMoveLeavesGameUnchanged(t *testing.T) {
	g := New()
	play(t, g, "e4")
	before := g.FEN()

	for _, san := range []string{"Ke3", "exd4", "Nd2", "Zz9", ""} {
		assert.Error(t, g.MoveSAN(san), san)
	}
	assert.Error(t, g.MoveFromTo(chess.E7, chess.E4, chess.NoKind))
	assert.Error(t, g.MoveLong("{wp - d2 - d4}"))

	assert.Equal(t, before, g.FEN())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 1, g.Cursor())
}

func TestMoveForms(t *testing.T) {
	g := New()
	require.NoError(t, g.MoveFromTo(chess.E2, chess.E4, chess.NoKind))
	require.NoError(t, g.MoveLong("{bp - c7 - c5}"))
	require.NoError(t, g.Move(chess.Move{From: chess.G1, To: chess.F3}))

	var sans []string
	for _, m := range g.History() {
		sans = append(sans, m.SAN)
	}
	assert.Equal(t, []string{"e4", "c5", "Nf3"}, sans)
	assert.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", g.FEN())
}

func TestCapturedPiecesFromFEN(t *testing.T) {
	// White is missing a queen; Black is missing a rook.
	g, err := NewFromFEN("1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQk - 0 1")
	require.NoError(t, err)
	assert.Equal(t, []chess.Piece{chess.W(chess.Queen)}, g.CapturedPieces(chess.White))
	assert.Equal(t, []chess.Piece{chess.B(chess.Rook)}, g.CapturedPieces(chess.Black))
}

func TestNewFromFENRejectsMalformed(t *testing.T) {
	g, err := NewFromFEN("8/8/8 w - - 0 1")
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, chesserrors.ErrInvalidFEN))
}

func TestOptions(t *testing.T) {
	var h chess.Headers
	h.Set(chess.WhiteTag, "Morphy")
	g := New(WithHeaders(h), WithHeader(chess.BlackTag, "Duke"))
	h.Set(chess.WhiteTag, "changed")

	assert.Equal(t, "Morphy", g.Headers().Get(chess.WhiteTag))
	assert.Equal(t, "Duke", g.Headers().Get(chess.BlackTag))
}
