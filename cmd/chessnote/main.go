// chessnote validates, normalises and exports chess games in PGN format.
package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/errors"
)

const (
	programName    = "chessnote"
	programVersion = "0.1.0"
)

// Exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitRejected = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the whole program minus the process exit.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.help {
		fs.Usage()
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return exitOK
	}

	cfg := buildConfig(opts, stdout, stderr)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	selector, err := buildSelector(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	var files closers
	defer files.closeAll()
	if err := setupFiles(cfg, opts, &files); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	// Loaders on several goroutines share the diagnostic stream.
	cfg.SetLogFile(zerolog.SyncWriter(cfg.LogFile))

	inputs, err := collectInputs(opts.fileListFile, fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	log := newLogger(cfg)
	p := newProcessor(cfg, log)
	p.selector = selector
	stats, err := p.process(ctx, inputs)
	if err != nil {
		log.Error().Err(err).Msg("processing stopped")
		return exitFailure
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, cfg.Duplicate.Suppress)
	}
	if stats.failed > 0 {
		return exitRejected
	}
	return exitOK
}

// newLogger builds the diagnostic logger over cfg.LogFile. Verbosity 0
// reports errors only, 1 adds per-file summaries, 2 adds every game.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Verbosity <= 0:
		level = zerolog.ErrorLevel
	case cfg.Verbosity >= 2:
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          cfg.LogFile,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}

// closers collects files opened for the run.
type closers []io.Closer

func (c *closers) add(f io.Closer) {
	*c = append(*c, f)
}

func (c closers) closeAll() {
	for _, f := range c {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// setupFiles opens the log, output and duplicate files named by flags.
func setupFiles(cfg *config.Config, opts *options, files *closers) error {
	if opts.logFile != "" {
		file, err := os.Create(opts.logFile)
		if err != nil {
			return errors.Wrap(err, "creating log file")
		}
		files.add(file)
		cfg.SetLogFile(file)
	}

	if opts.outputFile != "" {
		file, err := os.Create(opts.outputFile)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		files.add(file)
		cfg.SetOutput(file)
	}

	if opts.duplicateFile != "" {
		file, err := os.Create(opts.duplicateFile)
		if err != nil {
			return errors.Wrap(err, "creating duplicate file")
		}
		files.add(file)
		cfg.Duplicate.DuplicateFile = file
		cfg.Duplicate.Suppress = true
	}

	if cfg.Export.SVGDir != "" {
		if err := os.MkdirAll(cfg.Export.SVGDir, 0o755); err != nil { //nolint:gosec // G301: diagrams are meant to be shared
			return errors.Wrap(err, "creating diagram directory")
		}
	}
	return nil
}

// collectInputs lists the inputs named on the command line and in the file
// list; with neither, stdin is the only input.
func collectInputs(fileList string, args []string, stdin io.Reader) ([]input, error) {
	names := append([]string(nil), args...)
	if fileList != "" {
		listed, err := readFileList(fileList)
		if err != nil {
			return nil, err
		}
		names = append(names, listed...)
	}

	if len(names) == 0 {
		return []input{{name: "stdin", open: func() (io.ReadCloser, error) {
			return io.NopCloser(stdin), nil
		}}}, nil
	}

	inputs := make([]input, len(names))
	for i, name := range names {
		name := name
		inputs[i] = input{name: name, open: func() (io.ReadCloser, error) {
			return os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		}}
	}
	return inputs, nil
}

// readFileList reads one file name per line, skipping blanks and # comments.
func readFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, errors.Wrapf(err, "opening file list %s", path)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats statistics, duplicates bool) {
	if duplicates {
		fmt.Fprintf(w, "%d game(s) accepted, %d duplicate(s), %d rejected out of %d.\n",
			stats.accepted, stats.duplicates, stats.failed, stats.games)
	} else {
		fmt.Fprintf(w, "%d game(s) accepted, %d rejected out of %d.\n", stats.accepted, stats.failed, stats.games)
	}
	if stats.skipped > 0 {
		fmt.Fprintf(w, "%d game(s) did not match the selection.\n", stats.skipped)
	}
}
