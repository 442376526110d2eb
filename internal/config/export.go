package config

import (
	"fmt"

	"github.com/lgbarn/chessnote/internal/errors"
)

// ExportConfig holds settings for diagram and dataset export.
type ExportConfig struct {
	// SVGDir receives one final-position diagram per game when set
	SVGDir string

	// SquareSize is the diagram square edge in pixels
	SquareSize int

	// Flip draws diagrams from Black's side
	Flip bool

	// ParquetFile receives one row per ply when set
	ParquetFile string
}

// NewExportConfig creates an ExportConfig with default values.
func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		SquareSize: 45,
	}
}

// Validate checks the export settings.
func (e *ExportConfig) Validate() error {
	if e.SVGDir != "" && e.SquareSize <= 0 {
		return fmt.Errorf("square size %d: %w", e.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
