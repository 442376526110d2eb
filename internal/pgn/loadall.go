package pgn

import (
	"context"

	"github.com/lgbarn/chessnote/internal/worker"
)

// LoadAll loads games in parallel with the default loader. Results come
// back in input order, one per text.
func LoadAll(ctx context.Context, texts []string, workers int) []worker.Outcome {
	return defaultLoader.LoadAll(ctx, texts, workers)
}

// LoadAll loads games in parallel on a worker pool. A failed game carries
// its error and leaves the others unaffected. Games not started before ctx
// is done report the context error.
func (l *Loader) LoadAll(ctx context.Context, texts []string, workers int) []worker.Outcome {
	load := func(job worker.Job) worker.Outcome {
		g, err := l.Load(ctx, job.Text)
		return worker.Outcome{Seq: job.Seq, Text: job.Text, Game: g, Err: err}
	}
	skipped := func(job worker.Job, err error) worker.Outcome {
		return worker.Outcome{Seq: job.Seq, Text: job.Text, Err: contextError(err, 0)}
	}
	return worker.Run(ctx, texts, workers, load, skipped)
}
