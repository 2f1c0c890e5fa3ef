// internal/batch/batch.go
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/corpus"
	"github.com/xkilldash9x/typogen/internal/typo"
)

// Record is one generated variant of one corpus sample.
type Record struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	SampleIndex int         `json:"sample_index" yaml:"sample_index"`
	Variant     int         `json:"variant" yaml:"variant"`
	Category    string      `json:"category,omitempty" yaml:"category,omitempty"`
	Result      typo.Result `json:"result" yaml:"result"`
}

// Sink receives records in input order as soon as they are available.
// Write is never called concurrently.
type Sink interface {
	Write(rec Record) error
}

// Report summarizes a finished run.
type Report struct {
	RunID    string
	Seed     int64
	Records  []Record
	Changed  int
	Duration time.Duration
}

// Runner augments a corpus concurrently.
type Runner struct {
	engine *typo.Engine
	cfg    config.BatchConfig
	sink   Sink
	logger *zap.Logger
	newID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithSink forwards every record to s.
func WithSink(s Sink) Option {
	return func(r *Runner) {
		r.sink = s
	}
}

// WithRunID fixes the run identifier instead of generating a UUID.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.newID = func() string { return id }
	}
}

// NewRunner validates cfg and returns a Runner that forks engine per worker.
func NewRunner(engine *typo.Engine, cfg config.BatchConfig, logger *zap.Logger, opts ...Option) (*Runner, error) {
	if engine == nil {
		return nil, errors.New("batch runner requires an engine")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch configuration: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		engine: engine,
		cfg:    cfg,
		logger: logger.Named("batch"),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type indexedRecord struct {
	pos int
	rec Record
}

// Run generates cfg.Variants outputs for every sample.
//
// Work is striped statically: worker w handles jobs w, w+Workers, ... with an
// engine forked from seed+w, so a fixed non-zero seed and worker count always
// reproduce the same records. Records are returned in input order.
func (r *Runner) Run(ctx context.Context, samples []corpus.Sample) (*Report, error) {
	start := time.Now()
	seed := r.cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}

	report := &Report{RunID: r.newID(), Seed: seed}
	total := len(samples) * r.cfg.Variants
	workers := min(r.cfg.Workers, total)

	log := r.logger.With(zap.String("run_id", report.RunID))
	log.Info("Batch run started.",
		zap.Int("samples", len(samples)),
		zap.Int("variants", r.cfg.Variants),
		zap.Int("workers", workers),
		zap.Int64("seed", seed),
	)

	if total == 0 {
		report.Duration = time.Since(start)
		return report, nil
	}

	var limiter *rate.Limiter
	if r.cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.cfg.RateLimit), 1)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	results := make(chan indexedRecord, workers)
	for w := 0; w < workers; w++ {
		eng := r.engine.Fork(seed + int64(w))
		g.Go(func() error {
			for pos := w; pos < total; pos += workers {
				if limiter != nil {
					if err := limiter.Wait(gctx); err != nil {
						return err
					}
				}
				if err := gctx.Err(); err != nil {
					return err
				}

				idx, variant := pos/r.cfg.Variants, pos%r.cfg.Variants
				rec := Record{
					RunID:       report.RunID,
					SampleIndex: idx,
					Variant:     variant,
					Category:    samples[idx].Category,
					Result:      eng.Generate(samples[idx].Text),
				}
				select {
				case results <- indexedRecord{pos: pos, rec: rec}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- g.Wait()
		close(results)
	}()

	records := make([]Record, total)
	ready := make([]bool, total)
	next := 0
	var sinkErr error
	for ir := range results {
		records[ir.pos] = ir.rec
		ready[ir.pos] = true
		for next < total && ready[next] {
			if r.sink != nil && sinkErr == nil {
				if err := r.sink.Write(records[next]); err != nil {
					sinkErr = fmt.Errorf("sink rejected record %d: %w", next, err)
					cancel()
				}
			}
			next++
		}
	}

	if sinkErr != nil {
		log.Error("Batch run aborted by sink.", zap.Error(sinkErr))
		return nil, sinkErr
	}
	if err := <-waitErr; err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Batch run cancelled.", zap.Int("completed", next))
		}
		return nil, fmt.Errorf("batch run %s failed: %w", report.RunID, err)
	}

	report.Records = records
	for _, rec := range records {
		if rec.Result.Changed() {
			report.Changed++
		}
	}
	report.Duration = time.Since(start)

	log.Info("Batch run finished.",
		zap.Int("records", len(records)),
		zap.Int("changed", report.Changed),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}
