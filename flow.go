package flowgo

import (
	"math/rand"
	"runtime"
	"sync"
)

type options struct {
	parallelism int
	seed        int64
	seedSet     bool
	logger      *Logger
}

// Option configures Flow construction.
type Option func(*options)

// WithParallelism sets the number of partitions new datasets are split into
// and the limit on concurrently processed partitions.
//
// Defaults to runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithSeed seeds the RNG used by Sample, making sampling deterministic.
//
// Without a seed every Flow samples independently.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithLogger sets the structured logger used by the flow and algorithms
// running on top of it. If nil, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// Flow is an execution context for datasets: it owns the parallelism budget
// and the sampling RNG. A single Flow may host any number of datasets.
//
// Flow is safe for concurrent use.
type Flow struct {
	parallelism int
	logger      *Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New creates a Flow.
func New(optFns ...Option) *Flow {
	opts := options{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.parallelism <= 0 {
		opts.parallelism = runtime.GOMAXPROCS(0)
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = rand.Int63()
	}

	return &Flow{
		parallelism: opts.parallelism,
		logger:      opts.logger,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Parallelism returns the configured partition/worker count.
func (f *Flow) Parallelism() int { return f.parallelism }

// Logger returns the flow's logger. Never nil.
func (f *Flow) Logger() *Logger { return f.logger }

// perm returns a random permutation of [0, n) under the flow's RNG.
func (f *Flow) perm(n int) []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Perm(n)
}
