// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/matching"
)

// options holds the parsed command line.
type options struct {
	// Output options
	outputFile    string
	sevenTagOnly  bool
	noTags        bool
	noResults     bool
	noMoveNumbers bool
	lineLength    uint
	printFEN      bool

	// Duplicate detection
	suppressDuplicates bool
	duplicateFile      string
	duplicateCapacity  int
	transpositions     bool

	// Input options
	fileListFile   string
	encoding       string
	nestedComments bool
	workers        int

	// Game selection
	criteriaFile string
	player       string
	result       string
	matchAny     bool

	// Export
	svgDir      string
	squareSize  int
	flip        bool
	parquetFile string

	// Logging and mode
	logFile   string
	checkOnly bool
	quiet     bool
	verbose   bool
	help      bool
	version   bool
}

// newFlagSet binds the command-line flags to opts.
func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&opts.sevenTagOnly, "7", false, "Output only the seven tag roster")
	fs.BoolVar(&opts.noTags, "notags", false, "Don't output any tags")
	fs.BoolVar(&opts.noResults, "noresults", false, "Don't output results")
	fs.BoolVar(&opts.noMoveNumbers, "nonumbers", false, "Don't output move numbers")
	fs.UintVar(&opts.lineLength, "linelength", 80, "Maximum line length")
	fs.BoolVar(&opts.printFEN, "fen", false, "Add a comment with the final FEN after each game")

	fs.BoolVar(&opts.suppressDuplicates, "D", false, "Suppress duplicate games")
	fs.StringVar(&opts.duplicateFile, "d", "", "Output duplicates to this file")
	fs.IntVar(&opts.duplicateCapacity, "duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	fs.BoolVar(&opts.transpositions, "transpositions", false, "Treat games reaching the same final position in any number of moves as duplicates")

	fs.StringVar(&opts.fileListFile, "f", "", "File containing list of PGN files to process (one per line)")
	fs.StringVar(&opts.encoding, "encoding", config.EncodingUTF8, "Input encoding: utf-8 or latin1")
	fs.BoolVar(&opts.nestedComments, "nestedcomments", false, "Allow nested comments in PGN parsing")
	fs.IntVar(&opts.workers, "w", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	fs.StringVar(&opts.criteriaFile, "t", "", "Keep only games whose tags meet the criteria in this file")
	fs.StringVar(&opts.player, "p", "", "Keep only games where this player has White or Black")
	fs.StringVar(&opts.result, "Tr", "", "Keep only games with this result")
	fs.BoolVar(&opts.matchAny, "any", false, "Keep games meeting any one selection criterion")

	fs.StringVar(&opts.svgDir, "svg", "", "Write a final-position SVG diagram per game into this directory")
	fs.IntVar(&opts.squareSize, "squaresize", 45, "Diagram square size in pixels")
	fs.BoolVar(&opts.flip, "flip", false, "Draw diagrams from Black's side")
	fs.StringVar(&opts.parquetFile, "parquet", "", "Write one Parquet row per ply to this file")

	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to log file")
	fs.BoolVar(&opts.checkOnly, "check", false, "Validate games without writing them")
	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (errors only)")
	fs.BoolVar(&opts.verbose, "v", false, "Report every game")
	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() { usage(fs) }
	return fs
}

// buildConfig turns the parsed flags into a configuration.
func buildConfig(opts *options, stdout, stderr io.Writer) *config.Config {
	b := config.NewConfigBuilder().
		WithOutput(stdout).
		WithLogFile(stderr).
		WithMaxLineLength(opts.lineLength).
		WithResults(!opts.noResults).
		WithMoveNumbers(!opts.noMoveNumbers).
		WithFENOutput(opts.printFEN).
		WithDuplicateSuppression(opts.suppressDuplicates).
		WithDuplicateCapacity(opts.duplicateCapacity).
		WithEncoding(opts.encoding).
		WithNestedComments(opts.nestedComments).
		WithSVGDir(opts.svgDir).
		WithDiagramStyle(opts.squareSize, opts.flip).
		WithParquetFile(opts.parquetFile).
		CheckOnly(opts.checkOnly)

	switch {
	case opts.noTags:
		b.WithTagFormat(config.NoTags)
	case opts.sevenTagOnly:
		b.WithTagFormat(config.SevenTagRoster)
	}

	if opts.workers > 0 {
		b.WithWorkers(opts.workers)
	}

	switch {
	case opts.quiet:
		b.WithVerbosity(0)
	case opts.verbose:
		b.WithVerbosity(2)
	}

	cfg := b.Build()
	cfg.Duplicate.Exact = !opts.transpositions
	return cfg
}

// buildSelector collects the game selection flags. The result is never
// nil; without criteria it keeps every game.
func buildSelector(opts *options) (*matching.Selector, error) {
	s := matching.NewSelector()
	s.SetMatchAny(opts.matchAny)

	if opts.criteriaFile != "" {
		f, err := os.Open(opts.criteriaFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := s.Load(f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.criteriaFile, err)
		}
	}
	if opts.player != "" {
		s.AddPlayer(opts.player)
	}
	if opts.result != "" {
		if err := s.Add(chess.ResultTag, opts.result, matching.OpEqual); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [options] [input-files...]\n\n", programName)
	fmt.Fprintf(out, "Validates, normalises and exports chess games in PGN format.\n")
	fmt.Fprintf(out, "Games are read from the named files, the -f list, or stdin.\n\n")
	fmt.Fprintf(out, "Options:\n")
	fs.PrintDefaults()
}
