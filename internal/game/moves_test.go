package game_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/game"
	"github.com/lgbarn/chessnote/internal/testutil"
)

func TestEndGameInProgress(t *testing.T) {
	info, ok := game.New().EndGame()
	if ok {
		t.Fatal("EndGame() ok = true for a new game")
	}
	testutil.AssertEqual(t, info, game.EndGameInfo{Type: game.NoEnding, Winner: chess.NoColour})
	if got := info.Result(); got != "*" {
		t.Errorf("Result() = %q; want \"*\"", got)
	}
	if info.IsDraw() {
		t.Error("IsDraw() = true for a game in progress")
	}
	if got := info.Type.String(); got != "in progress" {
		t.Errorf("Type.String() = %q; want \"in progress\"", got)
	}
}

func TestMovesFromSquare(t *testing.T) {
	targets := func(moves []chess.Move) []string {
		var out []string
		for _, m := range moves {
			out = append(out, m.To.String())
		}
		return out
	}

	tests := []struct {
		name string
		sans []string
		from chess.Square
		want []string
	}{
		{"knight at start", nil, chess.G1, []string{"f3", "h3"}},
		{"pawn at start", nil, chess.E2, []string{"e3", "e4"}},
		{"empty square", nil, chess.E4, nil},
		{"opponent's piece", nil, chess.E7, nil},
		{"pinned knight", []string{"d4", "e5", "Nc3", "Bb4"}, chess.C3, nil},
		{"after mate", []string{"f3", "e5", "g4", "Qh4#"}, chess.E1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, "", tt.sans...)
			got := targets(g.Moves(tt.from))
			less := func(a, b string) bool { return a < b }
			if diff := cmp.Diff(tt.want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Moves(%v) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestCapturedPiecesFollowCursor(t *testing.T) {
	g := testutil.MustGame(t, "", "e4", "d5", "exd5", "Qxd5")
	testutil.AssertEqual(t, g.CapturedPieces(chess.Black), []chess.Piece{chess.B(chess.Pawn)})
	testutil.AssertEqual(t, g.CapturedPieces(chess.White), []chess.Piece{chess.W(chess.Pawn)})

	g.First()
	if got := g.CapturedPieces(chess.Black); len(got) != 0 {
		t.Errorf("CapturedPieces(Black) at start = %v; want none", got)
	}
	testutil.AssertEqual(t, testutil.SANs(g), []string{"e4", "d5", "exd5", "Qxd5"})
}
