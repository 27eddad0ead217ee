// Package engine runs the quality pipeline over a batch: audit,
// classify, score. Every record's result is a pure function of that
// record alone, so the batch is sharded across workers with results
// written to index-addressed slots; output is identical for any worker
// count.
package engine

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
	"github.com/Freedom18946/audio-analyzer/internal/quality"
)

// Result is the derived verdict for one record, attached alongside the
// raw input rather than mutating it.
type Result struct {
	Index        int // position in the input batch
	Record       metrics.Record
	MissingCount int
	Verdict      quality.Verdict
	Breakdown    quality.Breakdown
}

// RunStats is batch-level bookkeeping, returned as a value so the
// pipeline keeps no shared mutable state.
type RunStats struct {
	Records int
	Workers int
	Elapsed time.Duration
}

// Engine evaluates batches against one threshold profile.
type Engine struct {
	classifier *quality.Classifier
	scorer     *quality.Scorer
	workers    int
}

// New builds an engine. workers <= 0 selects one worker per CPU.
func New(t quality.Thresholds, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		classifier: quality.NewClassifier(t),
		scorer:     quality.NewScorer(t),
		workers:    workers,
	}
}

// Run evaluates every record in the batch. Results are index-aligned
// with b.Records; per-record evaluation is total, so the only error
// path is a panic bubbling out of a worker, which errgroup surfaces as
// a crash rather than a partial report.
func (e *Engine) Run(b *metrics.Batch) ([]Result, RunStats, error) {
	start := time.Now()
	n := b.Len()
	results := make([]Result, n)

	workers := e.workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				results[i] = e.evaluate(b, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RunStats{}, err
	}

	stats := RunStats{
		Records: n,
		Workers: workers,
		Elapsed: time.Since(start),
	}
	return results, stats, nil
}

func (e *Engine) evaluate(b *metrics.Batch, i int) Result {
	r := &b.Records[i]
	missing := quality.MissingCount(b, r)
	verdict := e.classifier.Classify(b, r, missing)
	breakdown := e.scorer.Score(b, r, missing, verdict.Status)
	return Result{
		Index:        i,
		Record:       *r,
		MissingCount: missing,
		Verdict:      verdict,
		Breakdown:    breakdown,
	}
}
