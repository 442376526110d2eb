// Package worker replays many games at once on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessnote/internal/game"
)

// Job is the PGN text of one game and its place in the input.
type Job struct {
	Seq  int
	Text string
}

// Outcome is what loading one job produced.
type Outcome struct {
	Seq  int
	Text string
	Game *game.Game // nil when Err is set
	Err  error
}

// LoadFunc turns a job into its outcome.
type LoadFunc func(Job) Outcome

// Pool feeds jobs to a fixed number of goroutines.
type Pool struct {
	workers  int
	backlog  int
	jobs     chan Job
	outcomes chan Outcome
	load     LoadFunc
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// Workers sets the number of goroutines. Values below one are ignored.
func Workers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// Backlog sets how many jobs and outcomes may wait in the channels.
func Backlog(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.backlog = n
		}
	}
}

// New creates a pool with one worker and a backlog of ten unless
// options say otherwise.
func New(load LoadFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, backlog: 10, load: load}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.backlog)
	p.outcomes = make(chan Outcome, p.backlog)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				// After Stop the queue is drained unprocessed.
				if p.stopped.Load() {
					continue
				}
				p.outcomes <- p.load(job)
			}
		}()
	}
}

// Submit queues a job, blocking while the backlog is full, unless ctx
// is done first.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes the workers skip every job not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes the
// outcome channel. It must be called exactly once, and the outcomes
// must be read concurrently.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.outcomes)
}

// Ordered drains the outcome channel and sorts it by Seq.
func (p *Pool) Ordered() []Outcome {
	var out []Outcome
	for o := range p.outcomes {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b Outcome) int {
		return a.Seq - b.Seq
	})
	return out
}

// Run loads every text on a new pool and returns one outcome per text
// in input order. Texts that never reached a worker because ctx ended
// get the outcome built by skipped.
func Run(ctx context.Context, texts []string, workers int, load LoadFunc, skipped func(Job, error) Outcome) []Outcome {
	p := New(load, Workers(workers), Backlog(2*workers))
	p.Start()

	go func() {
		defer p.Close()
		for i, text := range texts {
			if err := p.Submit(ctx, Job{Seq: i, Text: text}); err != nil {
				p.Stop()
				return
			}
		}
	}()

	out := make([]Outcome, len(texts))
	done := make([]bool, len(texts))
	for _, o := range p.Ordered() {
		out[o.Seq] = o
		done[o.Seq] = true
	}
	for i, text := range texts {
		if done[i] {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		out[i] = skipped(Job{Seq: i, Text: text}, err)
	}
	return out
}
