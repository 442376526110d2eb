package pgn

// TokenType identifies what a Token holds.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	// noToken is consumed input that yields nothing, such as whitespace.
	noToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "end of input",
	TagToken:          "tag name",
	StringToken:       "string",
	CommentToken:      "comment",
	NAGToken:          "annotation",
	CheckSymbol:       "check symbol",
	MoveNumber:        "move number",
	RAVStart:          "'('",
	RAVEnd:            "')'",
	MoveToken:         "move",
	TerminatingResult: "result",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown token"
}

// Token is one lexical unit of PGN text. Line and Column are 1-based and
// point at the token's first character.
type Token struct {
	Type    TokenType
	Text    string // tag name, tag value, move, comment, NAG or result
	MoveNum uint
	Line    uint
	Column  uint
}

// Game results as written in movetext and the Result tag.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	DrawResult = "1/2-1/2"
	Unfinished = "*"
)
