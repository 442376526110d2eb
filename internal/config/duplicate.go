package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// Exact also requires equal ply counts; otherwise the same final
	// position reached by transposition counts as a duplicate.
	Exact bool

	// MaxCapacity caps the number of remembered games (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives suppressed games when set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Exact: true,
	}
}
