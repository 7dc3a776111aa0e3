package kmeans

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector implements MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	sampleTotal       prometheus.Counter
	sampleErrors      prometheus.Counter
	iterationsTotal   prometheus.Counter
	iterationDuration prometheus.Histogram
	activeClusters    prometheus.Gauge
	trainTotal        prometheus.Counter
	trainErrors       prometheus.Counter
	trainDuration     prometheus.Histogram
}

// NewPrometheusCollector registers the kmeans training metrics with reg and
// returns the collector. Pass prometheus.DefaultRegisterer for the default
// registry.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)

	return &PrometheusCollector{
		sampleTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kmeans_sample_total",
			Help: "Total number of initial centroid sampling runs",
		}),
		sampleErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "kmeans_sample_errors_total",
			Help: "Total number of failed initial centroid sampling runs",
		}),
		iterationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kmeans_iterations_total",
			Help: "Total number of Lloyd iterations executed",
		}),
		iterationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kmeans_iteration_duration_seconds",
			Help:    "Duration of a single Lloyd iteration",
			Buckets: prometheus.DefBuckets,
		}),
		activeClusters: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kmeans_active_clusters",
			Help: "Clusters that received points in the most recent iteration",
		}),
		trainTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kmeans_train_total",
			Help: "Total number of training runs",
		}),
		trainErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "kmeans_train_errors_total",
			Help: "Total number of failed training runs",
		}),
		trainDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kmeans_train_duration_seconds",
			Help:    "Duration of a full training run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (c *PrometheusCollector) RecordSample(k int, duration time.Duration, err error) {
	c.sampleTotal.Inc()
	if err != nil {
		c.sampleErrors.Inc()
	}
}

func (c *PrometheusCollector) RecordIteration(iteration, activeClusters int, duration time.Duration) {
	c.iterationsTotal.Inc()
	c.iterationDuration.Observe(duration.Seconds())
	c.activeClusters.Set(float64(activeClusters))
}

func (c *PrometheusCollector) RecordTrain(iterations int, duration time.Duration, err error) {
	c.trainTotal.Inc()
	c.trainDuration.Observe(duration.Seconds())
	if err != nil {
		c.trainErrors.Inc()
	}
}
