// Package matching selects games by their tag values.
package matching

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/errors"
	"github.com/lgbarn/chessnote/internal/game"
)

// Operator compares a tag value with a criterion value.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // case-insensitive substring
	OpRegex
)

// playerTag matches either the White or the Black tag.
const playerTag = "_Player"

// operators is ordered so that two-character operators are tried first.
var operators = []struct {
	text string
	op   Operator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// Criterion is one test on one tag.
type Criterion struct {
	Tag   string
	Value string
	Op    Operator
	re    *regexp.Regexp
}

// Selector keeps the games whose tags meet its criteria.
type Selector struct {
	criteria []Criterion
	matchAny bool
}

// NewSelector creates a selector that requires every criterion to hold.
func NewSelector() *Selector {
	return &Selector{}
}

// SetMatchAny makes one satisfied criterion enough.
func (s *Selector) SetMatchAny(matchAny bool) {
	s.matchAny = matchAny
}

// Add adds a criterion. Regular expressions are compiled here.
func (s *Selector) Add(tag, value string, op Operator) error {
	c := Criterion{Tag: tag, Value: value, Op: op}
	if op == OpRegex {
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s pattern %q: %v: %w", tag, value, err, errors.ErrInvalidConfig)
		}
		c.re = re
	}
	s.criteria = append(s.criteria, c)
	return nil
}

// AddPlayer matches name anywhere in either player's tag.
func (s *Selector) AddPlayer(name string) {
	s.criteria = append(s.criteria, Criterion{Tag: playerTag, Value: name, Op: OpContains})
}

// Parse adds a criterion written as `Tag op "value"`, e.g.
// `Date >= "1990.01.01"` or `Event ~ "^World"`. Blank lines and
// lines starting with # are ignored.
func (s *Selector) Parse(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("criterion %q: missing operator: %w", line, errors.ErrInvalidConfig)
	}
	tag := line[:end]
	rest := strings.TrimSpace(line[end:])

	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			return s.Add(tag, unquote(strings.TrimSpace(rest[len(o.text):])), o.op)
		}
	}
	// A bare value means equality.
	return s.Add(tag, unquote(rest), OpEqual)
}

// Load adds one criterion per line of r.
func (s *Selector) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		if err := s.Parse(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// Len returns the number of criteria.
func (s *Selector) Len() int {
	return len(s.criteria)
}

// Match reports whether g is selected. A selector without criteria
// selects every game.
func (s *Selector) Match(g *game.Game) bool {
	if len(s.criteria) == 0 {
		return true
	}
	for _, c := range s.criteria {
		if matchCriterion(g, c) == s.matchAny {
			return s.matchAny
		}
	}
	return !s.matchAny
}

func matchCriterion(g *game.Game, c Criterion) bool {
	if c.Tag == playerTag {
		headers := g.Headers()
		return matchValue(headers.Get(chess.WhiteTag), c) || matchValue(headers.Get(chess.BlackTag), c)
	}

	value, ok := tagValue(g, c.Tag)
	if !ok {
		return c.Op == OpNotEqual
	}
	return matchValue(value, c)
}

// tagValue looks a tag up; a missing Result tag falls back to the
// outcome of the replayed game.
func tagValue(g *game.Game, tag string) (string, bool) {
	if value, ok := g.Headers().Lookup(tag); ok {
		return value, true
	}
	if tag == chess.ResultTag {
		return g.Result(), true
	}
	return "", false
}

func matchValue(value string, c Criterion) bool {
	switch c.Op {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(c.Value))
	case OpRegex:
		return c.re != nil && c.re.MatchString(value)
	default:
		return compareValues(value, c.Value, c.Op)
	}
}

// compareValues orders PGN dates (YYYY.MM.DD) as dates, numbers as
// numbers and everything else case-insensitively.
func compareValues(value, criterion string, op Operator) bool {
	var cmp int
	a, aDate := parseDate(value)
	b, bDate := parseDate(criterion)
	x, xErr := strconv.ParseFloat(value, 64)
	y, yErr := strconv.ParseFloat(criterion, 64)

	switch {
	case aDate && bDate:
		cmp = compareInts(a, b)
	case xErr == nil && yErr == nil:
		switch {
		case x < y:
			cmp = -1
		case x > y:
			cmp = 1
		}
	default:
		cmp = strings.Compare(strings.ToLower(value), strings.ToLower(criterion))
	}

	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// parseDate encodes a PGN date as YYYYMMDD. Unknown month or day parts
// ("??") count as the first of the period. Only values with a dot are
// dates, so plain numbers such as ratings compare as numbers.
func parseDate(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 100 || year > 3000 {
		return 0, false
	}

	month, day := 1, 1
	if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	if len(parts) == 3 {
		if d, err := strconv.Atoi(parts[2]); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day, true
}
