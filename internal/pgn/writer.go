package pgn

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/game"
)

// lineWriter handles formatted output with line length control.
type lineWriter struct {
	sb            *strings.Builder
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

func newLineWriter(sb *strings.Builder, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{sb: sb, maxLineLength: maxLineLength}
}

// write writes a word, breaking the line first if it would overflow.
func (o *lineWriter) write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.sb.WriteByte('\n')
			o.lineLength = 0
		} else {
			o.sb.WriteByte(' ')
			o.lineLength++
		}
	}
	o.sb.WriteString(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Writer writes games as PGN.
type Writer struct {
	w   io.Writer
	cfg *config.Config
}

// NewWriter creates a PGN writer. If cfg is nil, defaults are used.
func NewWriter(w io.Writer, cfg *config.Config) *Writer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Writer{w: w, cfg: cfg}
}

// WriteGame writes one game followed by a blank line.
func (w *Writer) WriteGame(g *game.Game) error {
	_, err := io.WriteString(w.w, format(g, &w.cfg.Output)+"\n")
	return err
}

// Encode returns the PGN text of a game: headers, a blank line, then the
// numbered moves and the result.
func Encode(g *game.Game) string {
	return format(g, config.NewOutputConfig())
}

func format(g *game.Game, out *config.OutputConfig) string {
	var sb strings.Builder
	if writeTags(&sb, g, out.TagFormat) > 0 {
		sb.WriteByte('\n')
	}
	writeMoves(&sb, g, out)
	return sb.String()
}

// writeTags writes the tag section and returns the number of tags written.
func writeTags(sb *strings.Builder, g *game.Game, form config.TagOutputForm) int {
	headers := g.Headers()
	n := 0
	writeTag := func(name, value string) {
		fmt.Fprintf(sb, "[%s \"%s\"]\n", name, escapeTagValue(value))
		n++
	}

	switch form {
	case config.NoTags:
		return 0
	case config.SevenTagRoster:
		for _, tag := range chess.SevenTagRoster {
			value := headers.Get(tag)
			if tag == chess.ResultTag && g.IsOver() {
				value = g.Result()
			}
			if value == "" {
				value = "?"
			}
			writeTag(tag, value)
		}
	default:
		for _, tag := range headers.Keys() {
			writeTag(tag, headers.Get(tag))
		}
	}

	// A game set up from a position cannot be replayed without it.
	if g.LoadedFromFEN() && !headers.Has(chess.FENTag) {
		writeTag(chess.SetupTag, "1")
		writeTag(chess.FENTag, g.StartFEN())
	} else if form == config.SevenTagRoster && headers.Has(chess.FENTag) {
		writeTag(chess.SetupTag, "1")
		writeTag(chess.FENTag, headers.Get(chess.FENTag))
	}
	return n
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// writeMoves writes the numbered move text and the result.
func writeMoves(sb *strings.Builder, g *game.Game, out *config.OutputConfig) {
	ow := newLineWriter(sb, int(out.MaxLineLength))
	start := g.StartPosition()
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White

	for i, m := range g.History() {
		if out.KeepMoveNumbers {
			if isWhite {
				ow.write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.write(m.SAN)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if out.OutputFEN && g.Len() > 0 {
		ow.write("{" + g.FEN() + "}")
	}
	if out.KeepResults && g.IsOver() {
		ow.write(g.Result())
	}
	if ow.lineLength > 0 {
		sb.WriteByte('\n')
	}
}
