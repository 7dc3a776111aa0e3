package kmeans

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/flowgo"
)

// Train runs Lloyd's k-means over the points dataset and returns the
// resulting model. The dataset is cached before its first read, so a
// non-deterministic source is materialized exactly once and sampling and
// every classification pass observe the same point set.
//
// Training runs exactly iterations iterations; there is no convergence
// check. Any error aborts the whole call with no partial model.
func Train(ctx context.Context, points *flowgo.Dataset[Point], dimensions, numClusters, iterations int, optFns ...Option) (*Model, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimensions, dimensions)
	}
	if numClusters <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNumClusters, numClusters)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	opts := options{
		policy:  DropEmptyClusters,
		logger:  points.Flow().Logger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.logger.WithK(numClusters).WithDimension(dimensions)

	trainStart := time.Now()
	model, err := train(ctx, points, dimensions, numClusters, iterations, &opts, logger)
	opts.metrics.RecordTrain(iterations, time.Since(trainStart), err)
	if err != nil {
		logger.ErrorContext(ctx, "training failed", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "training completed",
		"iterations", iterations,
		"centroids", len(model.centroids),
		"duration", time.Since(trainStart),
	)
	return model, nil
}

func train(ctx context.Context, points *flowgo.Dataset[Point], dimensions, numClusters, iterations int, opts *options, logger *flowgo.Logger) (*Model, error) {
	// Materialize the input exactly once before it is read twice (sampling
	// and the first classification pass both count as readers).
	cached := points.Cache()

	n, err := cached.Size(ctx)
	if err != nil {
		return nil, err
	}
	if n < numClusters {
		return nil, fmt.Errorf("%w: have %d points, need %d", ErrInsufficientData, n, numClusters)
	}

	centroids, err := initialCentroids(ctx, cached, numClusters, opts)
	if err != nil {
		return nil, err
	}

	for iter := 0; iter < iterations; iter++ {
		iterStart := time.Now()

		// Broadcast: one immutable snapshot per iteration. Every point in
		// this pass classifies against exactly this copy.
		snapshot := clonePoints(centroids)

		assigned := flowgo.Map(cached, func(p Point) (ClusterAssignment, error) {
			id, _, err := nearest(p, snapshot)
			if err != nil {
				return ClusterAssignment{}, err
			}
			return ClusterAssignment{
				ClusterID: id,
				Center:    CentroidAccumulator{Sum: p, Count: 1},
			}, nil
		})

		reduced := flowgo.ReduceByKey(assigned,
			func(a ClusterAssignment) uint64 { return uint64(a.ClusterID) },
			combineAssignments,
		)

		// Gathering forces evaluation here, so no lazy lineage is carried
		// into the next iteration.
		merged, err := reduced.AllGather(ctx)
		if err != nil {
			return nil, err
		}

		centroids = nextCentroids(merged, snapshot, opts.policy)

		opts.metrics.RecordIteration(iter, len(merged), time.Since(iterStart))
		logger.DebugContext(ctx, "iteration completed",
			"iteration", iter,
			"active_clusters", len(merged),
			"centroids", len(centroids),
			"duration", time.Since(iterStart),
		)
	}

	return NewModel(dimensions, numClusters, iterations, centroids)
}

// initialCentroids draws the starting centroid set: explicit centroids when
// supplied, otherwise a uniform sample of numClusters points. The positions
// in the returned list fix cluster ids 0..k-1 for the first iteration.
func initialCentroids(ctx context.Context, cached *flowgo.Dataset[Point], numClusters int, opts *options) ([]Point, error) {
	if opts.initialCentroids != nil {
		if len(opts.initialCentroids) != numClusters {
			return nil, fmt.Errorf("%w: have %d, want %d", ErrInitialCentroids, len(opts.initialCentroids), numClusters)
		}
		return clonePoints(opts.initialCentroids), nil
	}

	start := time.Now()
	sample, err := cached.Sample(ctx, numClusters)
	opts.metrics.RecordSample(numClusters, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return sample, nil
}

// nextCentroids assembles the centroid set for the next iteration from the
// merged per-cluster accumulators. merged is sorted by prior cluster id so
// the outcome does not depend on reduction output order.
func nextCentroids(merged []ClusterAssignment, prev []Point, policy EmptyClusterPolicy) []Point {
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ClusterID < merged[j].ClusterID
	})

	if policy == RetainPreviousCentroids {
		// prev is this iteration's private snapshot; absent ids keep their
		// previous centroid.
		next := prev
		for _, m := range merged {
			next[m.ClusterID] = m.Center.Mean()
		}
		return next
	}

	// DropEmptyClusters: ids absent from the reduction are absent from the
	// new set; survivors are renumbered by prior-id order.
	next := make([]Point, 0, len(merged))
	for _, m := range merged {
		next = append(next, m.Center.Mean())
	}
	return next
}
