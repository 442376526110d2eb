// Package game is the state machine of a single chess game: it records
// moves, keeps an undo/redo cursor over the history and classifies how
// the game ended.
//
// A Game is not safe for concurrent mutation; use one per goroutine or
// guard it externally.
package game

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/errors"
	"github.com/lgbarn/chessnote/internal/notation"
)

// Game is a chess game with its move history.
//
// positions[i] is the position after i moves, so positions[0] is the
// starting snapshot and len(positions) == len(moves)+1. The cursor is the
// number of moves applied to the position currently on view.
type Game struct {
	start     engine.Snapshot
	startFEN  string
	fromFEN   bool
	headers   chess.Headers
	positions []chess.Position
	moves     []chess.Move
	cursor    int
	endGame   *EndGameInfo
}

// New returns a game at the standard starting position.
func New(opts ...Option) *Game {
	g := newGame(engine.Snapshot{Position: chess.StartingPosition()}, engine.InitialFEN, false)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromFEN returns a game starting from a FEN position. A position that
// is already checkmate, stalemate or otherwise drawn starts terminal.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	snap, err := engine.ParseSnapshot(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(snap, engine.ToFEN(snap.Position), true)
	for _, opt := range opts {
		opt(g)
	}
	g.classify()
	return g, nil
}

func newGame(snap engine.Snapshot, fen string, fromFEN bool) *Game {
	return &Game{
		start:     snap,
		startFEN:  fen,
		fromFEN:   fromFEN,
		positions: []chess.Position{snap.Position},
	}
}

// Move plays a move given by its origin, destination and promotion kind.
// Other fields of m are recomputed.
func (g *Game) Move(m chess.Move) error {
	return g.MoveFromTo(m.From, m.To, m.Promotion)
}

// MoveFromTo plays the legal move from one square to another. A promotion
// with no kind becomes a queen.
func (g *Game) MoveFromTo(from, to chess.Square, promotion chess.Kind) error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	pos := g.Position()
	m, err := engine.FindMove(pos, from, to, promotion)
	if err != nil {
		return err
	}
	m.SAN = notation.EncodeSAN(pos, m)
	g.record(m)
	return nil
}

// MoveSAN plays a move written in standard algebraic notation.
func (g *Game) MoveSAN(san string) error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	m, err := notation.ParseSAN(g.Position(), san)
	if err != nil {
		return err
	}
	g.record(m)
	return nil
}

// MoveLong plays a move written in the long form, e.g. "{wp - e2 - e4}".
func (g *Game) MoveLong(text string) error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	m, err := notation.ParseLong(g.Position(), text)
	if err != nil {
		return err
	}
	g.record(m)
	return nil
}

func (g *Game) checkPlayable() error {
	if g.endGame != nil {
		return fmt.Errorf("%s: %w", g.endGame.Type, errors.ErrGameOver)
	}
	return nil
}

// record appends a validated move at the cursor, dropping any redo tail,
// and classifies the resulting position.
func (g *Game) record(m chess.Move) {
	next := engine.Apply(g.positions[g.cursor], m)
	g.moves = append(g.moves[:g.cursor], m)
	g.positions = append(g.positions[:g.cursor+1], next)
	g.cursor++
	g.classify()
}

func (g *Game) classify() {
	if info, ok := classify(g.positions[:g.cursor+1]); ok {
		g.endGame = &info
	}
}

// Resign ends the game with colour resigning.
func (g *Game) Resign(colour chess.Colour) error {
	return g.end(EndGameInfo{Type: Resigned, Winner: colour.Opposite()})
}

// Timeout ends the game with colour having run out of time.
func (g *Game) Timeout(colour chess.Colour) error {
	return g.end(EndGameInfo{Type: Timeout, Winner: colour.Opposite()})
}

// Draw ends the game by agreement.
func (g *Game) Draw() error {
	return g.end(EndGameInfo{Type: DrawDeclared, Winner: chess.NoColour})
}

func (g *Game) end(info EndGameInfo) error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	g.endGame = &info
	return nil
}

// EndGame returns how the game ended, if it has.
func (g *Game) EndGame() (EndGameInfo, bool) {
	if g.endGame == nil {
		return inProgress, false
	}
	return *g.endGame, true
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.endGame != nil
}

// Result returns the PGN result token, "*" while the game is in progress.
func (g *Game) Result() string {
	if g.endGame == nil {
		return "*"
	}
	return g.endGame.Result()
}

// Position returns the position at the cursor.
func (g *Game) Position() chess.Position {
	return g.positions[g.cursor]
}

// PositionAt returns the position after ply moves.
func (g *Game) PositionAt(ply int) (chess.Position, error) {
	if ply < 0 || ply >= len(g.positions) {
		return chess.Position{}, fmt.Errorf("ply %d of %d: %w", ply, len(g.moves), errors.ErrNoSuchMove)
	}
	return g.positions[ply], nil
}

// FEN returns the FEN of the position at the cursor.
func (g *Game) FEN() string {
	return engine.ToFEN(g.Position())
}

// Turn returns the side to move at the cursor.
func (g *Game) Turn() chess.Colour {
	return g.Position().ToMove
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	pos := g.Position()
	return engine.IsInCheck(pos.Board, pos.ToMove)
}

// LegalMoves returns the legal moves at the cursor, empty once the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.endGame != nil {
		return nil
	}
	return engine.LegalMoves(g.Position())
}

// Moves returns the legal moves of the piece on from.
func (g *Game) Moves(from chess.Square) []chess.Move {
	if g.endGame != nil {
		return nil
	}
	return engine.LegalMovesFrom(g.Position(), from)
}

// History returns a copy of every recorded move, including those after
// the cursor.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Len returns the number of recorded moves.
func (g *Game) Len() int {
	return len(g.moves)
}

// Headers returns the game's PGN headers for reading and editing.
func (g *Game) Headers() *chess.Headers {
	return &g.headers
}

// StartPosition returns the position the game began from.
func (g *Game) StartPosition() chess.Position {
	return g.positions[0]
}

// StartFEN returns the FEN of the starting position.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// LoadedFromFEN reports whether the game began from a FEN position.
func (g *Game) LoadedFromFEN() bool {
	return g.fromFEN
}

// CapturedPieces returns the pieces of colour off the board at the
// cursor: those missing from the starting snapshot followed by those
// taken during play.
func (g *Game) CapturedPieces(colour chess.Colour) []chess.Piece {
	var captured []chess.Piece
	if colour == chess.White {
		captured = append(captured, g.start.WhiteCaptured...)
	} else {
		captured = append(captured, g.start.BlackCaptured...)
	}
	for _, m := range g.moves[:g.cursor] {
		if m.IsCapture() && m.Captured.Colour() == colour {
			captured = append(captured, m.Captured)
		}
	}
	return captured
}
