package game

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/errors"
)

// Navigation moves the cursor over the recorded history without changing
// it. The ending, if any, is a property of the game and is unaffected.

// Cursor returns the number of moves applied to the position on view.
func (g *Game) Cursor() int {
	return g.cursor
}

// Undo steps the cursor back one move. It returns false at the start.
func (g *Game) Undo() bool {
	if g.cursor == 0 {
		return false
	}
	g.cursor--
	return true
}

// Redo steps the cursor forward one move. It returns false at the end.
func (g *Game) Redo() bool {
	if g.cursor == len(g.moves) {
		return false
	}
	g.cursor++
	return true
}

// First moves the cursor to the starting position.
func (g *Game) First() {
	g.cursor = 0
}

// Last moves the cursor past the final recorded move.
func (g *Game) Last() {
	g.cursor = len(g.moves)
}

// JumpTo moves the cursor so that ply moves are applied.
func (g *Game) JumpTo(ply int) error {
	if ply < 0 || ply > len(g.moves) {
		return fmt.Errorf("jump to ply %d of %d: %w", ply, len(g.moves), errors.ErrNoSuchMove)
	}
	g.cursor = ply
	return nil
}
