package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting training metrics.
// Implement this interface to integrate with monitoring systems; see
// NewPrometheusCollector for a ready-made Prometheus integration.
type MetricsCollector interface {
	// RecordSample is called after the initial centroid sampling.
	// k is the number of centroids requested, err is nil if successful.
	RecordSample(k int, duration time.Duration, err error)

	// RecordIteration is called after each Lloyd iteration.
	// activeClusters is the number of clusters that received points.
	RecordIteration(iteration, activeClusters int, duration time.Duration)

	// RecordTrain is called once when training finishes.
	// iterations is the configured iteration count, err is nil on success.
	RecordTrain(iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSample(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordIteration(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordTrain(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SampleCount         atomic.Int64
	SampleErrors        atomic.Int64
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	ActiveClustersLast  atomic.Int64
	TrainCount          atomic.Int64
	TrainErrors         atomic.Int64
	TrainTotalNanos     atomic.Int64
}

func (c *BasicMetricsCollector) RecordSample(k int, duration time.Duration, err error) {
	c.SampleCount.Add(1)
	if err != nil {
		c.SampleErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordIteration(iteration, activeClusters int, duration time.Duration) {
	c.IterationCount.Add(1)
	c.IterationTotalNanos.Add(int64(duration))
	c.ActiveClustersLast.Store(int64(activeClusters))
}

func (c *BasicMetricsCollector) RecordTrain(iterations int, duration time.Duration, err error) {
	c.TrainCount.Add(1)
	c.TrainTotalNanos.Add(int64(duration))
	if err != nil {
		c.TrainErrors.Add(1)
	}
}
