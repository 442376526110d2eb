// Package errors provides sentinel errors and error types for the chessnote
// packages. Structured error types preserve context while still allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParseFailure is the parent of every structural notation failure.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = fmt.Errorf("invalid FEN string: %w", ErrParseFailure)

	// ErrInvalidSAN indicates move text that does not match the SAN grammar.
	ErrInvalidSAN = fmt.Errorf("invalid SAN move: %w", ErrParseFailure)

	// ErrInvalidPiece indicates an unknown piece code or character.
	ErrInvalidPiece = fmt.Errorf("invalid piece: %w", ErrParseFailure)

	// ErrInvalidSquare indicates a square name outside a1..h8.
	ErrInvalidSquare = fmt.Errorf("invalid square: %w", ErrParseFailure)

	// ErrTimeout indicates a parse abandoned because its deadline passed.
	ErrTimeout = fmt.Errorf("parse timed out: %w", ErrParseFailure)

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMatchingMove indicates SAN text that no legal move satisfies.
	ErrNoMatchingMove = fmt.Errorf("no legal move matches: %w", ErrIllegalMove)

	// ErrAmbiguousMove indicates SAN text that more than one legal move satisfies.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = fmt.Errorf("game is over: %w", ErrIllegalMove)

	// ErrNoSuchMove indicates a history index outside the recorded moves.
	ErrNoSuchMove = errors.New("no such move in history")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateGame indicates a duplicate game was detected.
	ErrDuplicateGame = errors.New("duplicate game")
)

// Kind classifies an error into the broad categories callers act on.
type Kind int

const (
	KindUnknown Kind = iota
	KindStructural
	KindIllegal
	KindAmbiguous
	KindTimeout
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindIllegal:
		return "illegal"
	case KindAmbiguous:
		return "ambiguous"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// KindOf reports which kind of failure err represents.
// Timeout is checked first since it is also a parse failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrAmbiguousMove):
		return KindAmbiguous
	case errors.Is(err, ErrParseFailure):
		return KindStructural
	case errors.Is(err, ErrIllegalMove):
		return KindIllegal
	default:
		return KindUnknown
	}
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It supports unwrapping via
// errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input (0 if unknown)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with position context.
// It's used for FEN, SAN, long move text and PGN failures.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
