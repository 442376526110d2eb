// Package config holds the settings shared by the PGN reader, writer and
// the chessnote command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessnote/internal/errors"
)

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// Input encodings understood by the PGN reader.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=errors only, 1=per-file summary, 2=per-game commentary
	Verbosity int

	// CheckOnly validates games without writing them.
	CheckOnly bool

	// Workers is the number of games loaded in parallel.
	Workers int

	// Encoding of PGN input, EncodingUTF8 or EncodingLatin1.
	Encoding string

	// AllowNestedComments lets {...} nest inside a comment.
	AllowNestedComments bool

	Output    OutputConfig
	Duplicate DuplicateConfig
	Export    ExportConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		Encoding:   EncodingUTF8,
		Output:     *NewOutputConfig(),
		Duplicate:  *NewDuplicateConfig(),
		Export:     *NewExportConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	switch c.Encoding {
	case EncodingUTF8, EncodingLatin1:
	default:
		return fmt.Errorf("unknown encoding %q: %w", c.Encoding, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Export.Validate()
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}
