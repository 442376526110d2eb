package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithTagFormat sets which tags are written.
func (b *ConfigBuilder) WithTagFormat(format TagOutputForm) *ConfigBuilder {
	b.cfg.Output.TagFormat = format
	return b
}

// WithResults controls whether results are written.
func (b *ConfigBuilder) WithResults(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepResults = keep
	return b
}

// WithMoveNumbers controls whether move numbers are written.
func (b *ConfigBuilder) WithMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// WithFENOutput enables writing the final FEN of each game.
func (b *ConfigBuilder) WithFENOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.OutputFEN = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithWorkers sets the number of parallel loaders.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithEncoding sets the input encoding.
func (b *ConfigBuilder) WithEncoding(encoding string) *ConfigBuilder {
	b.cfg.Encoding = encoding
	return b
}

// WithNestedComments allows nested braces in comments.
func (b *ConfigBuilder) WithNestedComments(enabled bool) *ConfigBuilder {
	b.cfg.AllowNestedComments = enabled
	return b
}

// WithSVGDir enables diagram export into dir.
func (b *ConfigBuilder) WithSVGDir(dir string) *ConfigBuilder {
	b.cfg.Export.SVGDir = dir
	return b
}

// WithDiagramStyle sets the diagram square size and orientation.
func (b *ConfigBuilder) WithDiagramStyle(squareSize int, flip bool) *ConfigBuilder {
	b.cfg.Export.SquareSize = squareSize
	b.cfg.Export.Flip = flip
	return b
}

// WithDuplicateCapacity caps the number of games remembered for duplicate
// detection.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxCapacity = n
	return b
}

// WithParquetFile enables dataset export to path.
func (b *ConfigBuilder) WithParquetFile(path string) *ConfigBuilder {
	b.cfg.Export.ParquetFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// CheckOnly controls whether games are only validated.
func (b *ConfigBuilder) CheckOnly(enabled bool) *ConfigBuilder {
	b.cfg.CheckOnly = enabled
	return b
}
