// Package diagram draws board diagrams as SVG.
package diagram

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/game"
)

// DefaultSquareSize is the edge of one square in pixels.
const DefaultSquareSize = 45

var (
	defaultLight = color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}
	defaultDark  = color.RGBA{R: 0xb5, G: 0x88, B: 0x63, A: 0xff}
	moveMark     = color.RGBA{R: 0xcd, G: 0xd2, B: 0x6a, A: 0xff}
)

var glyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

type encoder struct {
	squareSize  int
	light, dark color.Color
	perspective chess.Colour
	marks       map[chess.Square]color.Color
	coordinates bool
}

// Option configures a diagram.
type Option func(*encoder)

// SquareSize sets the edge of one square in pixels.
func SquareSize(px int) Option {
	return func(e *encoder) {
		if px > 0 {
			e.squareSize = px
		}
	}
}

// SquareColors sets the light and dark square colours.
func SquareColors(light, dark color.Color) Option {
	return func(e *encoder) {
		e.light, e.dark = light, dark
	}
}

// Perspective sets the side drawn at the bottom of the board.
func Perspective(c chess.Colour) Option {
	return func(e *encoder) {
		e.perspective = c
	}
}

// MarkSquares fills the given squares with c.
func MarkSquares(c color.Color, sqs ...chess.Square) Option {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// HighlightMove marks the origin and destination of m.
func HighlightMove(m chess.Move) Option {
	return MarkSquares(moveMark, m.From, m.To)
}

// Coordinates toggles the file and rank labels along the board edge.
func Coordinates(on bool) Option {
	return func(e *encoder) {
		e.coordinates = on
	}
}

// WriteSVG draws board to w.
func WriteSVG(w io.Writer, board chess.Board, opts ...Option) error {
	e := &encoder{
		squareSize:  DefaultSquareSize,
		light:       defaultLight,
		dark:        defaultDark,
		perspective: chess.White,
		marks:       make(map[chess.Square]color.Color),
		coordinates: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	ew := &errWriter{w: w}
	e.draw(svg.New(ew), board)
	return ew.err
}

// WriteGame draws the position at the game's cursor, highlighting the move
// that led to it.
func WriteGame(w io.Writer, g *game.Game, opts ...Option) error {
	if cursor := g.Cursor(); cursor > 0 {
		opts = append([]Option{HighlightMove(g.History()[cursor-1])}, opts...)
	}
	return WriteSVG(w, g.Position().Board, opts...)
}

func (e *encoder) draw(canvas *svg.SVG, board chess.Board) {
	size := e.squareSize
	canvas.Start(size*chess.BoardSize, size*chess.BoardSize)

	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*4/5)
	labelStyle := fmt.Sprintf("font-size:%dpx;font-family:sans-serif", size/5)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			col, row := e.cell(sq)
			x, y := col*size, row*size

			fill := e.dark
			if sq.IsLight() {
				fill = e.light
			}
			if c, ok := e.marks[sq]; ok {
				fill = c
			}
			canvas.Rect(x, y, size, size, "fill:"+hex(fill))

			if glyph, ok := glyphs[board.Get(sq)]; ok {
				canvas.Text(x+size/2, y+size/2, glyph, pieceStyle)
			}

			if !e.coordinates {
				continue
			}
			if row == chess.BoardSize-1 {
				canvas.Text(x+size-size/5, y+size-2, string(sq.FileChar()), labelStyle)
			}
			if col == 0 {
				canvas.Text(x+2, y+size/5+2, string(sq.RankChar()), labelStyle)
			}
		}
	}
	canvas.End()
}

// cell returns the display column and row of sq, row 0 at the top.
func (e *encoder) cell(sq chess.Square) (col, row int) {
	if e.perspective == chess.Black {
		return chess.BoardSize - 1 - sq.File(), sq.Rank()
	}
	return sq.File(), chess.BoardSize - 1 - sq.Rank()
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// errWriter keeps the first write error, since the canvas does not report
// errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
