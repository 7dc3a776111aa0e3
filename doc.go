// Package flowgo provides a small in-process dataflow substrate for
// data-parallel computation over partitioned datasets.
//
// A Flow owns the execution resources (worker parallelism, seeded sampling
// RNG). Datasets are lazy, partitioned, generic sequences derived from one
// another by transformations; actions force evaluation and return concrete
// values.
//
// # Quick Start
//
//	flow := flowgo.New(flowgo.WithParallelism(8), flowgo.WithSeed(42))
//
//	nums := flowgo.FromSlice(flow, []int{1, 2, 3, 4}).Cache()
//
//	doubled := flowgo.Map(nums, func(v int) (int, error) { return 2 * v, nil })
//
//	out, err := doubled.AllGather(ctx)
//
// # Transformations and Actions
//
// Transformations (Map, ReduceByKey, Cache, Collapse) are lazy and build a
// new Dataset. Actions (AllGather, Sample, Size, Reduce) evaluate the
// dataset and return a single value visible to the whole computation.
//
// Partitions are processed independently and concurrently; transformation
// functions must be pure with respect to shared state. No ordering is
// guaranteed between partitions, only within one.
//
// # Caching
//
// Evaluating a dataset normally re-runs its whole lineage. Cache() pins the
// result of the first evaluation so every subsequent reader observes the
// identical values. Any dataset whose lineage is non-deterministic (random
// generators, mutable files) must be cached before it is read twice.
//
// Higher-level algorithms live in subpackages; see kmeans for distributed
// Lloyd's clustering built on these primitives.
package flowgo
