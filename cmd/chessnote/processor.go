// processor.go - Game loading, checking and output
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/diagram"
	"github.com/lgbarn/chessnote/internal/errors"
	"github.com/lgbarn/chessnote/internal/export"
	"github.com/lgbarn/chessnote/internal/game"
	"github.com/lgbarn/chessnote/internal/hashing"
	"github.com/lgbarn/chessnote/internal/matching"
	"github.com/lgbarn/chessnote/internal/pgn"
	"github.com/lgbarn/chessnote/internal/worker"
)

// input is one named source of PGN text.
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

// loadedFile holds the games of one input in input order.
type loadedFile struct {
	name    string
	results []worker.Outcome
}

// statistics counts what happened to the games of a run.
type statistics struct {
	games      int
	accepted   int
	duplicates int
	skipped    int
	failed     int
}

// processor loads every input and then handles the games one at a time,
// so that output order follows input order.
type processor struct {
	cfg       *config.Config
	log       zerolog.Logger
	loader    *pgn.Loader
	writer    *pgn.Writer
	dupWriter *pgn.Writer
	selector  *matching.Selector
	detector  *hashing.ThreadSafeDuplicateDetector
	records   []export.MoveRecord
	stats     statistics
}

func newProcessor(cfg *config.Config, log zerolog.Logger) *processor {
	p := &processor{
		cfg:    cfg,
		log:    log,
		loader: pgn.NewLoader(cfg),
		writer: pgn.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Suppress {
		p.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.Exact, cfg.Duplicate.MaxCapacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		p.dupWriter = pgn.NewWriter(cfg.Duplicate.DuplicateFile, cfg)
	}
	return p
}

// process loads all inputs concurrently, then checks and writes their
// games in input order.
func (p *processor) process(ctx context.Context, inputs []input) (statistics, error) {
	loaded := make([]loadedFile, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			texts, err := readGames(in, p.cfg.Encoding)
			if err != nil {
				return err
			}
			loaded[i] = loadedFile{name: in.name, results: p.loader.LoadAll(ctx, texts, p.cfg.Workers)}
			p.log.Info().Str("file", in.name).Int("games", len(texts)).Msg("loaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return p.stats, err
	}

	gameIndex := 0
	for _, file := range loaded {
		for _, r := range file.results {
			if err := p.handle(file.name, r, gameIndex); err != nil {
				return p.stats, err
			}
			gameIndex++
		}
	}

	if path := p.cfg.Export.ParquetFile; path != "" {
		if err := export.WriteParquet(path, p.records, int64(p.cfg.Workers)); err != nil {
			return p.stats, errors.Wrapf(err, "writing %s", path)
		}
		p.log.Info().Str("file", path).Int("rows", len(p.records)).Msg("dataset written")
	}
	return p.stats, nil
}

// readGames splits one input into game texts.
func readGames(in input, encoding string) ([]string, error) {
	rc, err := in.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := pgn.NewDecodingReader(rc, encoding)
	if err != nil {
		return nil, err
	}
	texts, err := pgn.SplitGames(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", in.name)
	}
	return texts, nil
}

// handle checks one loaded game and sends it to every configured output.
// Only write failures are returned; rejected games are logged and counted.
func (p *processor) handle(file string, r worker.Outcome, gameIndex int) error {
	p.stats.games++
	gameNum := r.Seq + 1

	if r.Err != nil {
		p.stats.failed++
		var gameErr *errors.GameError
		if stderrors.As(r.Err, &gameErr) {
			gameErr.File = file
			gameErr.GameNum = gameNum
		}
		p.log.Error().
			Err(r.Err).
			Str("kind", errors.KindOf(r.Err).String()).
			Msg("game rejected")
		return nil
	}

	g := r.Game
	if p.selector != nil && !p.selector.Match(g) {
		p.stats.skipped++
		p.log.Debug().Str("file", file).Int("game", gameNum).Msg("not selected")
		return nil
	}
	if p.detector != nil && p.detector.CheckAndAdd(hashing.NewSignature(g.Position(), g.Len())) {
		p.stats.duplicates++
		p.log.Debug().Str("file", file).Int("game", gameNum).Msg("duplicate")
		if p.dupWriter != nil {
			return p.dupWriter.WriteGame(g)
		}
		return nil
	}

	p.stats.accepted++
	p.log.Debug().
		Str("file", file).
		Int("game", gameNum).
		Int("plies", g.Len()).
		Str("result", g.Result()).
		Msg("game accepted")

	if !p.cfg.CheckOnly {
		if err := p.writer.WriteGame(g); err != nil {
			return err
		}
	}
	if p.cfg.Export.SVGDir != "" {
		if err := p.writeDiagram(file, gameNum, g); err != nil {
			return err
		}
	}
	if p.cfg.Export.ParquetFile != "" {
		p.records = append(p.records, export.Records(g, gameIndex)...)
	}
	return nil
}

// writeDiagram draws the final position of a game into the diagram
// directory, named after its input and number.
func (p *processor) writeDiagram(file string, gameNum int, g *game.Game) error {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	path := filepath.Join(p.cfg.Export.SVGDir, fmt.Sprintf("%s-%03d.svg", base, gameNum))

	out, err := os.Create(path) //nolint:gosec // G304: path is built from the user's diagram directory
	if err != nil {
		return err
	}
	opts := []diagram.Option{diagram.SquareSize(p.cfg.Export.SquareSize)}
	if p.cfg.Export.Flip {
		opts = append(opts, diagram.Perspective(chess.Black))
	}
	if err := diagram.WriteGame(out, g, opts...); err != nil {
		out.Close() //nolint:errcheck,gosec // G104: the write error wins
		return err
	}
	return out.Close()
}
