package config

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/errors"
)

// MinLineLength is the shortest line the PGN writer can wrap move text to.
const MinLineLength = 20

// OutputConfig holds settings related to PGN output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for PGN move text
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the game result is appended
	KeepResults bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm

	// OutputFEN adds a comment holding the FEN at the cursor after the last move
	OutputFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		TagFormat:       AllTags,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	if o.TagFormat < AllTags || o.TagFormat > NoTags {
		return fmt.Errorf("tag format %d: %w", o.TagFormat, errors.ErrInvalidConfig)
	}
	return nil
}
