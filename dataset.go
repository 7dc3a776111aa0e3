package flowgo

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Dataset is a lazy, partitioned sequence of values bound to a Flow.
//
// A Dataset is either derived (its partitions are recomputed from its
// lineage on every evaluation) or cached (the first evaluation is pinned and
// shared by all readers, see Cache). Transformations return new datasets and
// never mutate their input.
type Dataset[T any] struct {
	flow *Flow
	eval func(ctx context.Context) ([][]T, error)

	cache bool
	once  sync.Once
	parts [][]T
	err   error
}

// run evaluates the dataset into concrete partitions.
func (d *Dataset[T]) run(ctx context.Context) ([][]T, error) {
	if !d.cache {
		return d.eval(ctx)
	}
	d.once.Do(func() {
		d.parts, d.err = d.eval(ctx)
	})
	return d.parts, d.err
}

// Flow returns the flow this dataset is bound to.
func (d *Dataset[T]) Flow() *Flow { return d.flow }

// Cache returns a dataset whose lineage is evaluated at most once; all
// subsequent reads observe the identical materialized partitions.
//
// Caching is mandatory before a non-deterministic dataset (e.g. a random
// generator) is consumed more than once, otherwise each consumer would
// observe a different view of the data.
func (d *Dataset[T]) Cache() *Dataset[T] {
	if d.cache {
		return d
	}
	return &Dataset[T]{
		flow:  d.flow,
		eval:  d.run,
		cache: true,
	}
}

// Collapse forces evaluation now and returns a concrete dataset holding the
// result. Use it at loop boundaries to stop lazy lineages from growing
// without bound across iterations.
func (d *Dataset[T]) Collapse(ctx context.Context) (*Dataset[T], error) {
	parts, err := d.run(ctx)
	if err != nil {
		return nil, err
	}
	return fromPartitions(d.flow, parts), nil
}

// fromPartitions wraps already-materialized partitions in a dataset.
func fromPartitions[T any](f *Flow, parts [][]T) *Dataset[T] {
	return &Dataset[T]{
		flow: f,
		eval: func(context.Context) ([][]T, error) { return parts, nil },
	}
}

// FromSlice creates a dataset from items, split evenly into the flow's
// partitions. The slice is not copied; the caller must not mutate it after
// handing it over.
func FromSlice[T any](f *Flow, items []T) *Dataset[T] {
	parts := partitionSlice(items, f.parallelism)
	return fromPartitions(f, parts)
}

// Generate creates a lazy dataset of n elements produced by gen(i) for
// i in [0, n). Every evaluation re-invokes gen, so a non-deterministic
// generator yields a different dataset each time unless cached. gen must be
// safe for concurrent use, as partitions are generated in parallel.
func Generate[T any](f *Flow, n int, gen func(i int) T) *Dataset[T] {
	return &Dataset[T]{
		flow: f,
		eval: func(ctx context.Context) ([][]T, error) {
			bs := partitionBounds(n, f.parallelism)
			parts := make([][]T, len(bs))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(f.parallelism)
			for pi, b := range bs {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					part := make([]T, 0, b.end-b.start)
					for i := b.start; i < b.end; i++ {
						part = append(part, gen(i))
					}
					parts[pi] = part
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return parts, nil
		},
	}
}

// FromFunc creates a lazy dataset whose elements are produced by load at
// evaluation time and then split into the flow's partitions. load is
// re-invoked on every evaluation; cache the dataset if load is expensive or
// reads a mutable source.
func FromFunc[T any](f *Flow, load func(ctx context.Context) ([]T, error)) *Dataset[T] {
	return &Dataset[T]{
		flow: f,
		eval: func(ctx context.Context) ([][]T, error) {
			items, err := load(ctx)
			if err != nil {
				return nil, err
			}
			return partitionSlice(items, f.parallelism), nil
		},
	}
}

// Map returns a lazy dataset with fn applied to every element. Partitions
// are processed concurrently; fn must not share mutable state across calls.
// The first error returned by fn aborts the evaluation.
func Map[T, U any](d *Dataset[T], fn func(T) (U, error)) *Dataset[U] {
	return &Dataset[U]{
		flow: d.flow,
		eval: func(ctx context.Context) ([][]U, error) {
			in, err := d.run(ctx)
			if err != nil {
				return nil, err
			}

			out := make([][]U, len(in))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(d.flow.parallelism)
			for pi, part := range in {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					mapped := make([]U, len(part))
					for i, item := range part {
						u, err := fn(item)
						if err != nil {
							return err
						}
						mapped[i] = u
					}
					out[pi] = mapped
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

type bounds struct {
	start, end int
}

// partitionBounds splits [0, n) into at most p contiguous ranges of nearly
// equal size. n == 0 yields a single empty range.
func partitionBounds(n, p int) []bounds {
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}
	if p < 1 {
		return []bounds{{0, 0}}
	}

	out := make([]bounds, p)
	base := n / p
	rem := n % p
	start := 0
	for i := range out {
		size := base
		if i < rem {
			size++
		}
		out[i] = bounds{start, start + size}
		start += size
	}
	return out
}

func partitionSlice[T any](items []T, p int) [][]T {
	bs := partitionBounds(len(items), p)
	parts := make([][]T, len(bs))
	for i, b := range bs {
		parts[i] = items[b.start:b.end]
	}
	return parts
}
