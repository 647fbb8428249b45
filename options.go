package rabbitsearch

import "runtime"

// defaultTarget and defaultMax are the target/max open-file thresholds from
// spec.md §4.5: T = 2^13, M = 2^15.
const (
	defaultTarget = 1 << 13
	defaultMax    = 1 << 15
)

// Option configures a [Scheduler] at construction time, mirroring the
// functional-options shape the teacher uses for its own Options type.
type Option func(*options)

type options struct {
	workers      int
	target       int
	max          int
	logger       Logger
	statFallback bool
	simd         *ISA
	queueCap     int
	metrics      bool
}

func defaultOptions() options {
	return options{
		workers:      2 * runtime.GOMAXPROCS(0),
		target:       defaultTarget,
		max:          defaultMax,
		logger:       NopLogger{},
		statFallback: false,
		queueCap:     defaultQueueCapacity,
	}
}

// WithWorkers sets the number of worker goroutines. n <= 0 is ignored
// (default: 2x GOMAXPROCS, matching spec.md §5's "2x hardware concurrency").
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithTarget sets the target open-file backpressure threshold from
// spec.md §4.5: once filesOpen reaches this, workers stop fetching new
// SearchFile jobs and drain instead. n <= 0 is ignored (default: 2^13).
func WithTarget(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.target = n
		}
	}
}

// WithMax sets the max open-file backpressure threshold from spec.md §4.5:
// the hard ceiling filesOpen must never exceed. n <= 0 is ignored (default:
// 2^15). NewScheduler panics if the resulting target ends up >= max, the
// one invariant the spec requires callers to uphold themselves.
func WithMax(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.max = n
		}
	}
}

// WithLogger routes diagnostics through logger instead of discarding them.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStatFallback enables the SPEC_FULL.md §12.1 supplemented behavior:
// resolving DT_UNKNOWN entries via fstatat instead of skipping them.
func WithStatFallback(enabled bool) Option {
	return func(o *options) { o.statFallback = enabled }
}

// WithSIMD overrides automatic ISA selection for the substring scanner.
// Mainly useful for testing the scalar fallback on hardware that would
// otherwise select a vectorized tier.
func WithSIMD(isa ISA) Option {
	return func(o *options) { o.simd = &isa }
}

// WithQueueCapacity overrides the physical MPMC ring capacity (see
// defaultQueueCapacity).
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueCap = n
		}
	}
}

// WithMetrics records that the caller wants a metrics summary; the actual
// counting only happens in binaries built with the rabbitsearch_metrics
// tag (see metrics_enabled.go/metrics_disabled.go) — this flag just tells
// cmd/rbs whether to print [Scheduler.Metrics] on exit.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}
