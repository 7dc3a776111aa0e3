// Package kmeans implements distributed Lloyd's k-means clustering on top of
// the flowgo dataflow primitives.
//
// Training materializes the input points once, draws k initial centroids by
// uniform sampling, and then runs a fixed number of iterations. Each
// iteration broadcasts one immutable centroid snapshot to all partitions,
// classifies every point against it, merges per-cluster accumulators with an
// associative/commutative combine, and derives a brand-new centroid set that
// fully replaces the previous one. There is no convergence check: the caller
// chooses the iteration count.
//
//	flow := flowgo.New(flowgo.WithSeed(1))
//	points := source.Slice(flow, pts)
//
//	model, err := kmeans.Train(ctx, points, dim, k, iterations)
//	if err != nil { ... }
//
//	id, _ := model.Classify(query)
//	cost, _ := model.ComputeCostDataset(ctx, points)
//
// A cluster that receives no points in an iteration produces no centroid for
// the next one; by default the working set shrinks (the historical behavior
// of this algorithm). Use WithEmptyClusterPolicy(RetainPreviousCentroids) to
// keep the previous centroid instead.
package kmeans
