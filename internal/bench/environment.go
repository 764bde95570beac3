// Package bench implements the timing harness: several workers, each owning
// its own strategy, claim indices from a shared counter, time F(n) a fixed
// number of times and report the fastest run. The harness stops once an
// index takes longer than the configured limit.
package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
)

var tracer = otel.Tracer("fibbench/bench")

// Default harness parameters.
const (
	DefaultWorkers     = 4
	DefaultRepetitions = 15
	DefaultStep        = 1000
	DefaultStart       = 0
	DefaultMaxTime     = time.Second
	DefaultEpsilon     = 250 * time.Millisecond
)

// Config holds the harness parameters.
type Config struct {
	// Workers is the number of concurrent workers.
	Workers int
	// Repetitions is the number of timed calls per index.
	Repetitions int
	// Step is added to the shared counter on every claim.
	Step uint64
	// Start is the first index claimed.
	Start uint64
	// MaxTime plus Epsilon is the per-index time that ends the run.
	MaxTime time.Duration
	Epsilon time.Duration
}

// DefaultConfig returns the standard harness parameters.
func DefaultConfig() Config {
	return Config{
		Workers:     DefaultWorkers,
		Repetitions: DefaultRepetitions,
		Step:        DefaultStep,
		Start:       DefaultStart,
		MaxTime:     DefaultMaxTime,
		Epsilon:     DefaultEpsilon,
	}
}

// Limit returns the measured time above which the run stops.
func (c Config) Limit() time.Duration {
	return c.MaxTime + c.Epsilon
}

// Sample is the measurement for one index.
type Sample struct {
	// N is the Fibonacci index.
	N uint64
	// Time is the fastest of the timed calls, truncated to microseconds.
	Time time.Duration
	// Worker identifies the worker that produced the sample.
	Worker int
}

// Seconds returns Time in seconds.
func (s Sample) Seconds() float64 {
	return s.Time.Seconds()
}

// Sink receives samples one at a time, in arrival order, from a single
// goroutine. A non-nil error aborts the run.
type Sink func(Sample) error

// Environment runs the measurement workers for one strategy.
type Environment struct {
	cfg      Config
	strategy string
	create   func() (fibonacci.Strategy, error)

	logger  logging.Logger
	metrics *Metrics
	now     func() time.Time

	next    atomic.Uint64
	highest atomic.Uint64
	running atomic.Bool
}

// NewEnvironment returns an Environment that measures the strategy built by
// create, one instance per worker. name labels logs and metrics.
func NewEnvironment(cfg Config, name string, create func() (fibonacci.Strategy, error), opts ...Option) *Environment {
	e := &Environment{
		cfg:      cfg,
		strategy: name,
		create:   create,
		logger:   logging.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HighestClaimed returns the largest index claimed so far by any worker.
func (e *Environment) HighestClaimed() uint64 {
	return e.highest.Load()
}

// Run starts the workers and feeds their samples to sink until an index
// exceeds the time limit, ctx is canceled, or sink fails. It returns
// ctx.Err() when canceled and the sink's error when the sink fails.
func (e *Environment) Run(ctx context.Context, sink Sink) error {
	if e.cfg.Workers <= 0 || e.cfg.Repetitions <= 0 || e.cfg.Step == 0 {
		return fmt.Errorf("invalid benchmark configuration: %+v", e.cfg)
	}

	e.next.Store(e.cfg.Start)
	e.highest.Store(e.cfg.Start)
	e.running.Store(true)

	strategies := make([]fibonacci.Strategy, e.cfg.Workers)
	for id := range strategies {
		strategy, err := e.create()
		if err != nil {
			return fmt.Errorf("creating strategy for worker %d: %w", id, err)
		}
		strategies[id] = strategy
	}

	started := time.Now()
	e.logger.Info("benchmark started",
		logging.Int("workers", e.cfg.Workers),
		logging.Int("repetitions", e.cfg.Repetitions),
		logging.Uint64("start", e.cfg.Start),
		logging.Uint64("step", e.cfg.Step),
		logging.Duration("limit", e.cfg.Limit()),
	)

	g, gctx := errgroup.WithContext(ctx)
	samples := make(chan Sample, e.cfg.Workers)

	workers, wctx := errgroup.WithContext(gctx)
	for id, strategy := range strategies {
		workers.Go(func() error {
			return e.measure(wctx, id, strategy, samples)
		})
	}
	g.Go(func() error {
		defer close(samples)
		return workers.Wait()
	})

	// Single printer: samples are written in the order they arrive.
	g.Go(func() error {
		for s := range samples {
			if err := sink(s); err != nil {
				e.running.Store(false)
				return fmt.Errorf("writing sample for n=%d: %w", s.N, err)
			}
		}
		return nil
	})

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		e.logger.Warn("benchmark stopped early",
			logging.Uint64("highest", e.HighestClaimed()),
			logging.Err(err),
		)
		return err
	}
	e.logger.Info("benchmark finished",
		logging.Uint64("highest", e.HighestClaimed()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// measure is one worker's loop.
func (e *Environment) measure(ctx context.Context, id int, strategy fibonacci.Strategy, out chan<- Sample) error {
	limit := e.cfg.Limit()
	for e.running.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := e.next.Add(e.cfg.Step) - e.cfg.Step
		e.raiseHighest(n)

		s := e.sample(ctx, id, strategy, n)
		if s.Time > limit {
			e.running.Store(false)
			e.logger.Debug("time limit exceeded, stopping",
				logging.Int("worker", id),
				logging.Uint64("n", n),
				logging.Duration("time", s.Time),
			)
		}

		select {
		case out <- s:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// sample prepares the strategy for n and keeps the fastest of the timed
// calls.
func (e *Environment) sample(ctx context.Context, id int, strategy fibonacci.Strategy, n uint64) Sample {
	_, span := tracer.Start(ctx, "bench.sample")
	defer span.End()

	strategy.Prepare(n)

	best := time.Duration(math.MaxInt64)
	for i := 0; i < e.cfg.Repetitions; i++ {
		start := e.now()
		res := strategy.Fib(n)
		elapsed := e.now().Sub(start)
		runtime.KeepAlive(res)

		best = min(best, elapsed.Truncate(time.Microsecond))
	}

	s := Sample{N: n, Time: best, Worker: id}
	span.SetAttributes(
		attribute.String("fib.strategy", e.strategy),
		attribute.Int64("fib.n", int64(n)),
		attribute.Int("fib.worker", id),
		attribute.Float64("fib.seconds", s.Seconds()),
	)
	if e.metrics != nil {
		e.metrics.Observe(e.strategy, s)
	}
	e.logger.Debug("sample",
		logging.Int("worker", id),
		logging.Uint64("n", n),
		logging.Duration("time", s.Time),
	)
	return s
}

func (e *Environment) raiseHighest(n uint64) {
	for {
		cur := e.highest.Load()
		if n <= cur || e.highest.CompareAndSwap(cur, n) {
			return
		}
	}
}
