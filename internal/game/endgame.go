package game

import (
	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
)

// EndgameType is the way a game ended.
type EndgameType uint8

const (
	NoEnding EndgameType = iota // the game is still in progress
	Checkmate
	Resigned
	Timeout
	Stalemate
	DrawDeclared
	InsufficientMaterial
	Move50Rule
	Repetition
)

var endgameNames = [...]string{
	NoEnding:             "in progress",
	Checkmate:            "checkmate",
	Resigned:             "resigned",
	Timeout:              "timeout",
	Stalemate:            "stalemate",
	DrawDeclared:         "draw declared",
	InsufficientMaterial: "insufficient material",
	Move50Rule:           "fifty-move rule",
	Repetition:           "threefold repetition",
}

// String returns a readable name for the ending.
func (t EndgameType) String() string {
	if int(t) < len(endgameNames) {
		return endgameNames[t]
	}
	return "unknown"
}

// EndGameInfo records how a game ended. Winner is NoColour for draws and
// while the game is in progress.
type EndGameInfo struct {
	Type   EndgameType
	Winner chess.Colour
}

// Result returns the PGN result token: "1-0", "0-1", "1/2-1/2", or "*"
// while the game is in progress.
func (e EndGameInfo) Result() string {
	if e.Type == NoEnding {
		return "*"
	}
	switch e.Winner {
	case chess.White:
		return "1-0"
	case chess.Black:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// IsDraw reports whether the game ended without a winner.
func (e EndGameInfo) IsDraw() bool {
	return e.Type != NoEnding && e.Winner == chess.NoColour
}

// inProgress is what EndGame reports before the game has ended.
var inProgress = EndGameInfo{Type: NoEnding, Winner: chess.NoColour}

// repetitionLimit is the number of occurrences that ends the game.
const repetitionLimit = 3

// classify examines the last position of history and returns the natural
// ending it has reached, if any. The first matching rule wins.
func classify(history []chess.Position) (EndGameInfo, bool) {
	current := history[len(history)-1]

	if !engine.HasLegalMoves(current) {
		if engine.IsInCheck(current.Board, current.ToMove) {
			return EndGameInfo{Type: Checkmate, Winner: current.ToMove.Opposite()}, true
		}
		return EndGameInfo{Type: Stalemate, Winner: chess.NoColour}, true
	}
	if current.HalfmoveClock >= 100 {
		return EndGameInfo{Type: Move50Rule, Winner: chess.NoColour}, true
	}
	if occurrences(history) >= repetitionLimit {
		return EndGameInfo{Type: Repetition, Winner: chess.NoColour}, true
	}
	if engine.HasInsufficientMaterial(current.Board) {
		return EndGameInfo{Type: InsufficientMaterial, Winner: chess.NoColour}, true
	}
	return inProgress, false
}

// occurrences counts how often the last position's repetition key appears
// in history. Only positions since the last capture or pawn move can match.
func occurrences(history []chess.Position) int {
	last := len(history) - 1
	key := history[last].Key()
	oldest := last - history[last].HalfmoveClock
	if oldest < 0 {
		oldest = 0
	}

	count := 0
	for i := last; i >= oldest; i-- {
		if history[i].Key() == key {
			count++
		}
	}
	return count
}
