package kmeans

import "github.com/hupe1980/flowgo"

// EmptyClusterPolicy controls what happens to a cluster id that receives
// zero assigned points in an iteration.
type EmptyClusterPolicy int

const (
	// DropEmptyClusters removes empty cluster ids from the next centroid
	// set; the working cluster count can shrink across iterations and the
	// surviving centroids are renumbered in prior-id order. This is the
	// default.
	DropEmptyClusters EmptyClusterPolicy = iota

	// RetainPreviousCentroids keeps the previous centroid for an empty
	// cluster id, so the centroid set stays at its full size.
	RetainPreviousCentroids
)

type options struct {
	policy           EmptyClusterPolicy
	initialCentroids []Point
	logger           *flowgo.Logger
	metrics          MetricsCollector
}

// Option configures Train behavior.
type Option func(*options)

// WithEmptyClusterPolicy sets how empty clusters are handled between
// iterations.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithInitialCentroids skips the uniform sampling step and starts from the
// given centroids. len(centroids) must equal numClusters; the points are
// cloned, the caller keeps ownership.
//
// Duplicate centroids are valid degenerate input: they compete on equal
// footing under the lowest-id tie break.
func WithInitialCentroids(centroids []Point) Option {
	return func(o *options) {
		o.initialCentroids = centroids
	}
}

// WithLogger sets the structured logger used during training. Defaults to
// the flow's logger.
func WithLogger(logger *flowgo.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = flowgo.NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics collector notified during training.
// Defaults to NoopMetricsCollector.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
