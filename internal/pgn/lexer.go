package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnote/internal/config"
)

// Lexer tokenizes PGN input. It reads line by line and never backtracks,
// so lexing time is linear in the input size.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	eof      bool
	cfg      *config.Config

	// Comment nesting depth
	commentDepth uint
}

// charClass groups input bytes by how they start a token.
type charClass uint8

const (
	clsOther charClass = iota
	clsSpace
	clsTagOpen
	clsTagClose
	clsQuote
	clsBraceOpen
	clsBraceClose
	clsDollar
	clsAnnotation
	clsCheck
	clsDot
	clsParenOpen
	clsParenClose
	clsRestOfLine
	clsEscape
	clsLetter
	clsDigit
	clsStar
	clsDash
)

var classOf = func() (t [256]charClass) {
	for _, c := range []byte(" \t\r\n\f\v") {
		t[c] = clsSpace
	}
	for c, class := range map[byte]charClass{
		'[': clsTagOpen, ']': clsTagClose, '"': clsQuote,
		'{': clsBraceOpen, '}': clsBraceClose, '$': clsDollar,
		'!': clsAnnotation, '?': clsAnnotation, '+': clsCheck, '#': clsCheck,
		'.': clsDot, '(': clsParenOpen, ')': clsParenClose,
		'%': clsRestOfLine, ';': clsRestOfLine, '\\': clsEscape,
		'*': clsStar, '-': clsDash,
	} {
		t[c] = class
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = clsDigit
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = clsLetter
		t[c-'a'+'A'] = clsLetter
	}
	return t
}()

// isMoveChar reports whether c can continue a move once a letter started
// it: letters, digits and the capture, castling and promotion marks.
func isMoveChar(c byte) bool {
	switch classOf[c] {
	case clsLetter, clsDigit:
		return true
	}
	return c == ':' || c == '-' || c == '='
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = quietConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// quietConfig is the default configuration with diagnostics discarded.
func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.LogFile = io.Discard
	return cfg
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipWhile advances over characters of the given class.
func (l *Lexer) skipWhile(class charClass) {
	for l.pos < len(l.line) && classOf[l.currentChar()] == class {
		l.advance()
	}
}

// warnf writes a diagnostic to the configured log.
func (l *Lexer) warnf(format string, args ...any) {
	fmt.Fprintf(l.cfg.LogFile, format+" on line %d.\n", append(args, l.lineNum)...)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		start := l.pos
		token := l.getNextSymbol()
		if token.Type != noToken {
			if token.Line == 0 {
				token.Line = l.lineNum
				token.Column = uint(start) + 1
			}
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: noToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch classOf[ch] {
	case clsSpace:
		l.skipWhile(clsSpace)
		return &Token{Type: noToken}

	case clsTagOpen:
		return l.gatherTag()

	case clsTagClose:
		return &Token{Type: noToken}

	case clsQuote:
		return l.gatherString()

	case clsBraceOpen:
		return l.gatherComment()

	case clsBraceClose:
		l.warnf("Unmatched comment end")
		return &Token{Type: noToken}

	case clsDollar:
		start := l.pos
		l.skipWhile(clsDigit)
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}

	case clsAnnotation:
		l.skipWhile(clsAnnotation)
		return &Token{Type: NAGToken, Text: annotationToNAG(l.line[symbolStart:l.pos])}

	case clsCheck:
		l.skipWhile(clsCheck)
		return &Token{Type: CheckSymbol, Text: l.line[symbolStart:l.pos]}

	case clsDot:
		l.skipWhile(clsDot)
		return &Token{Type: noToken}

	case clsParenOpen:
		l.ravLevel++
		return &Token{Type: RAVStart}

	case clsParenClose:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: RAVEnd}
		}
		l.warnf("Too many ')' found")
		return &Token{Type: noToken}

	case clsRestOfLine:
		// Rest-of-line comment
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case clsEscape:
		if l.pos < len(l.line) {
			l.advance()
		}
		return &Token{Type: noToken}

	case clsLetter:
		return l.gatherMove(symbolStart)

	case clsDigit:
		return l.gatherNumeric(ch, symbolStart)

	case clsStar:
		return &Token{Type: TerminatingResult, Text: Unfinished}

	case clsDash:
		// A null move has no legal counterpart; it is passed on so that
		// replay rejects the game instead of shifting the side to move.
		if l.currentChar() == '-' {
			l.advance()
			return &Token{Type: MoveToken, Text: "--"}
		}
		l.warnf("Single '-' not allowed")
		return &Token{Type: noToken}

	default:
		l.warnf("Unknown character %q (0x%x)", ch, ch)
		l.skipWhile(clsOther)
		return &Token{Type: noToken}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	l.skipWhile(clsSpace)

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if classOf[ch] == clsLetter || classOf[ch] == clsDigit || ch == '_' {
			l.advance()
		} else {
			break
		}
	}

	if l.pos > start {
		return &Token{Type: TagToken, Text: l.line[start:l.pos]}
	}
	l.warnf("Missing tag name")
	return &Token{Type: noToken}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}

	l.warnf("Missing closing quote")
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a comment block, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	line, col := l.lineNum, uint(l.pos)
	l.commentDepth++

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()

			switch {
			case ch == '{' && l.cfg.AllowNestedComments:
				l.commentDepth++
				sb.WriteByte(ch)
			case ch == '}':
				l.commentDepth--
				if l.commentDepth == 0 {
					return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: line, Column: col}
				}
				sb.WriteByte(ch)
			default:
				sb.WriteByte(ch)
			}
		}

		if !l.readLine() {
			break
		}
	}

	l.commentDepth = 0
	l.warnf("Missing end of comment")
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: line, Column: col}
}

// gatherMove gathers move text starting with a letter. Anything that is
// not a move is still returned as a move so that replay reports it.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) && isMoveChar(l.currentChar()) {
		// "exf6e.p.": the marker may follow the square directly.
		if l.pos > symbolStart && strings.HasPrefix(l.line[l.pos:], enPassantMarker) {
			break
		}
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	l.skipEnPassantMarker()
	return &Token{Type: MoveToken, Text: text}
}

const enPassantMarker = "e.p."

// skipEnPassantMarker consumes an "e.p." written after a capture, with or
// without a space before it.
func (l *Lexer) skipEnPassantMarker() {
	rest := l.line[l.pos:]
	trimmed := strings.TrimLeft(rest, " ")
	if strings.HasPrefix(trimmed, enPassantMarker) {
		l.pos += len(rest) - len(trimmed) + len(enPassantMarker)
	}
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		// Could be 0-1 (result) or 0-0 / 0-0-0 (castling)
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: BlackWins}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, Text: "O-O-O"}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, Text: "O-O"}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: WhiteWins}
		}
		if strings.HasPrefix(remaining, "/2-1/2") {
			l.pos += len("/2-1/2")
			return &Token{Type: TerminatingResult, Text: DrawResult}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: DrawResult}
		}
	}

	return l.gatherMoveNumber(symbolStart)
}

// gatherMoveNumber parses a move number token and its trailing dots.
func (l *Lexer) gatherMoveNumber(symbolStart int) *Token {
	l.skipWhile(clsDigit)
	numStr := l.line[symbolStart:l.pos]
	l.skipWhile(clsDot)

	n, err := strconv.ParseUint(numStr, 10, 32)
	if err != nil {
		l.warnf("Bad move number %s", numStr)
	}
	return &Token{Type: MoveNumber, Text: numStr, MoveNum: uint(n)}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}
