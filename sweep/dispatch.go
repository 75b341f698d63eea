package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const tracerName = "github.com/hasbyte1/go-gridindex/sweep"

// Handler receives the combinations of a sweep. Implementations typically
// submit one job per combination to an external execution service.
//
// Handle may be called from several goroutines at once when the
// [Dispatcher] runs with more than one worker.
type Handler interface {
	Handle(ctx context.Context, c Combination) error
}

// HandlerFunc adapts a function to the [Handler] interface.
type HandlerFunc func(ctx context.Context, c Combination) error

// Handle calls f(ctx, c).
func (f HandlerFunc) Handle(ctx context.Context, c Combination) error { return f(ctx, c) }

// Report summarises one [Dispatcher.Run].
type Report struct {
	RunID      string
	Dispatched int
	Succeeded  int
	Failed     int
}

// Option configures a [Dispatcher].
type Option func(*Dispatcher)

// WithWorkers bounds the number of combinations handled concurrently.
// Values below one are treated as one.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n < 1 {
			n = 1
		}
		d.workers = n
	}
}

// WithRateLimit caps how fast combinations are handed to the handler.
// A limit of [rate.Inf] or anything not above zero disables limiting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(d *Dispatcher) {
		if limit == rate.Inf || limit <= 0 {
			d.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTracer sets the tracer used for run and combination spans. The
// default comes from the global OpenTelemetry provider.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// WithContinueOnError keeps dispatching after a handler error. All
// failures are then returned together once the sweep is done.
func WithContinueOnError(v bool) Option {
	return func(d *Dispatcher) { d.continueOnError = v }
}

// Dispatcher walks a [Sweep] and feeds every combination to a [Handler]
// with bounded concurrency. A Dispatcher may run several sweeps, one after
// another or concurrently; each run walks its own iterator.
type Dispatcher struct {
	handler         Handler
	workers         int
	limiter         *rate.Limiter
	logger          *zap.Logger
	tracer          trace.Tracer
	continueOnError bool
}

// NewDispatcher returns a Dispatcher that hands combinations to h, one at a
// time unless [WithWorkers] says otherwise.
func NewDispatcher(h Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handler: h,
		workers: 1,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run dispatches every combination of s and waits for the handlers to
// return.
//
// By default the first handler error cancels the run and is returned,
// wrapped in [ErrHandlerFailed]. With [WithContinueOnError] every
// combination is attempted and all failures are joined. Cancelling ctx
// stops dispatching new combinations; Run then returns ctx's error once
// in-flight handlers finish. The same happens when the rate limiter cannot
// grant a token before ctx's deadline.
func (d *Dispatcher) Run(ctx context.Context, s *Sweep) (Report, error) {
	seq, err := s.Combinations()
	if err != nil {
		return Report{}, err
	}

	report := Report{RunID: uuid.NewString()}
	log := d.logger.With(zap.String("run_id", report.RunID), zap.String("sweep", s.Name))

	ctx, span := d.tracer.Start(ctx, "sweep.Run", trace.WithAttributes(
		attribute.String("sweep.run_id", report.RunID),
		attribute.String("sweep.name", s.Name),
		attribute.String("sweep.restriction", s.Restriction.String()),
		attribute.IntSlice("sweep.extents", s.Extents()),
	))
	defer span.End()

	log.Info("Starting sweep",
		zap.Ints("extents", s.Extents()),
		zap.Stringer("restriction", s.Restriction),
		zap.Int("workers", d.workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	var (
		dispatched, succeeded, failed atomic.Int64
		mu                            sync.Mutex
		failures                      []error
		waitErr                       error
	)

	for c := range seq {
		if gctx.Err() != nil {
			break
		}
		if d.limiter != nil {
			// Wait also fails early when the next token lands past the
			// deadline, before ctx itself is done.
			if err := d.limiter.Wait(gctx); err != nil {
				waitErr = err
				break
			}
		}
		g.Go(func() error {
			// The slot may have been freed by a failing handler.
			if gctx.Err() != nil {
				return nil
			}
			dispatched.Add(1)
			if err := d.handle(gctx, log, c); err != nil {
				failed.Add(1)
				if !d.continueOnError {
					return err
				}
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = errors.Join(failures...)
	}
	if err == nil {
		if waitErr == nil {
			waitErr = ctx.Err()
		}
		if waitErr != nil {
			err = fmt.Errorf("sweep: run %s interrupted: %w", report.RunID, waitErr)
		}
	}

	report.Dispatched = int(dispatched.Load())
	report.Succeeded = int(succeeded.Load())
	report.Failed = int(failed.Load())

	span.SetAttributes(
		attribute.Int("sweep.dispatched", report.Dispatched),
		attribute.Int("sweep.failed", report.Failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sweep failed")
		log.Error("Sweep failed", zap.Error(err),
			zap.Int("dispatched", report.Dispatched), zap.Int("failed", report.Failed))
		return report, err
	}

	log.Info("Sweep completed", zap.Int("dispatched", report.Dispatched))
	return report, nil
}

func (d *Dispatcher) handle(ctx context.Context, log *zap.Logger, c Combination) error {
	ctx, span := d.tracer.Start(ctx, "sweep.Handle", trace.WithAttributes(
		attribute.String("combination.id", c.ID),
		attribute.Int("combination.seq", c.Seq),
	))
	defer span.End()

	log.Debug("Dispatching combination",
		zap.Int("seq", c.Seq),
		zap.String("id", c.ID),
		zap.Stringer("bindings", c))

	if err := d.handler.Handle(ctx, c); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "handler failed")
		log.Warn("Combination failed", zap.Int("seq", c.Seq), zap.String("id", c.ID), zap.Error(err))
		return fmt.Errorf("%w: combination %s (%s): %w", ErrHandlerFailed, c.ID, c, err)
	}
	return nil
}
