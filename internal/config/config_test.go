package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessnote/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if cfg.OutputFEN {
		t.Error("OutputFEN should be false by default")
	}
	if cfg.TagFormat != AllTags {
		t.Errorf("TagFormat = %v, want AllTags", cfg.TagFormat)
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if !cfg.Exact {
		t.Error("Exact should be true by default")
	}
	if cfg.MaxCapacity != 0 {
		t.Errorf("MaxCapacity = %d, want 0", cfg.MaxCapacity)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Encoding != EncodingUTF8 {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, EncodingUTF8)
	}
	if cfg.Export.SVGDir != "" || cfg.Export.ParquetFile != "" {
		t.Error("exports should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"latin1", func(c *Config) { c.Encoding = EncodingLatin1 }, false},
		{"unknown encoding", func(c *Config) { c.Encoding = "ebcdic" }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"short lines", func(c *Config) { c.Output.MaxLineLength = 5 }, true},
		{"bad tag format", func(c *Config) { c.Output.TagFormat = 7 }, true},
		{"svg without size", func(c *Config) { c.Export.SVGDir = "out"; c.Export.SquareSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLogFile(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLogFile did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithMaxLineLength(120).
		WithTagFormat(SevenTagRoster).
		WithDuplicateSuppression(true).
		WithWorkers(3).
		WithEncoding(EncodingLatin1).
		WithSVGDir("diagrams").
		WithDiagramStyle(30, true).
		WithDuplicateCapacity(500).
		CheckOnly(true).
		Build()

	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Output.TagFormat != SevenTagRoster {
		t.Errorf("TagFormat = %v, want SevenTagRoster", cfg.Output.TagFormat)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.Encoding != EncodingLatin1 {
		t.Errorf("Encoding = %q, want latin1", cfg.Encoding)
	}
	if cfg.Export.SVGDir != "diagrams" {
		t.Errorf("SVGDir = %q, want diagrams", cfg.Export.SVGDir)
	}
	if cfg.Export.SquareSize != 30 || !cfg.Export.Flip {
		t.Errorf("diagram style = %d/%v, want 30/true", cfg.Export.SquareSize, cfg.Export.Flip)
	}
	if cfg.Duplicate.MaxCapacity != 500 {
		t.Errorf("MaxCapacity = %d, want 500", cfg.Duplicate.MaxCapacity)
	}
	if !cfg.CheckOnly {
		t.Error("CheckOnly should be true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config invalid: %v", err)
	}
}
