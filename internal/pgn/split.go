package pgn

import (
	"bufio"
	"io"
	"strings"
)

// SplitGames splits a PGN stream into the text of each game. A game ends
// where a tag line follows move text; braces are tracked so that a tag-like
// line inside a multi-line comment does not split a game.
func SplitGames(r io.Reader) ([]string, error) {
	var (
		games     []string
		current   strings.Builder
		seenMoves bool
		inComment bool
	)
	flush := func() {
		if text := current.String(); strings.TrimSpace(text) != "" {
			games = append(games, text)
		}
		current.Reset()
		seenMoves = false
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			trimmed := strings.TrimLeft(line, " \t")
			if !inComment && seenMoves && strings.HasPrefix(trimmed, "[") {
				flush()
			}
			current.WriteString(line)

			var hasMoves bool
			inComment, hasMoves = scanLine(line, inComment)
			seenMoves = seenMoves || hasMoves
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	flush()
	return games, nil
}

// scanLine follows comment state across a line and reports whether the
// line holds anything outside comments and tags.
func scanLine(line string, inComment bool) (stillInComment, hasMoves bool) {
	inTag := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inComment:
			if ch == '}' {
				inComment = false
			}
		case inTag:
			if ch == ']' {
				inTag = false
			}
		case ch == '{':
			inComment = true
		case ch == '[':
			inTag = true
		case ch == ';' || (ch == '%' && i == 0):
			return inComment, hasMoves
		case classOf[ch] != clsSpace:
			hasMoves = true
		}
	}
	return inComment, hasMoves
}
