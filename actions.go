package flowgo

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// AllGather evaluates the dataset and returns every element as one ordered
// slice: partitions in order, elements in partition order. The result is a
// single consistent value; callers on different goroutines all see the same
// elements for a cached dataset.
func (d *Dataset[T]) AllGather(ctx context.Context) ([]T, error) {
	parts, err := d.run(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]T, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// Size evaluates the dataset and returns its element count.
func (d *Dataset[T]) Size(ctx context.Context) (int, error) {
	parts, err := d.run(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	return total, nil
}

// Sample evaluates the dataset and draws n elements uniformly at random
// without replacement, using the flow's RNG. The result is one logical
// value: under WithSeed the same flow always draws the same sample from the
// same dataset.
//
// Elements appear in dataset order, not draw order.
func (d *Dataset[T]) Sample(ctx context.Context, n int) ([]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}

	parts, err := d.run(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total < n {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrNotEnoughItems, total, n)
	}

	picked := d.flow.perm(total)[:n]
	sort.Ints(picked)

	out := make([]T, 0, n)
	next := 0
	offset := 0
	for _, p := range parts {
		for next < n && picked[next] < offset+len(p) {
			out = append(out, p[picked[next]-offset])
			next++
		}
		offset += len(p)
	}
	return out, nil
}

// Reduce folds the dataset into a single value with combine. combine must be
// associative and commutative: partitions are folded independently and
// concurrently, then the partials are folded in unspecified order.
//
// Returns ErrEmptyDataset for an empty dataset.
func Reduce[T any](ctx context.Context, d *Dataset[T], combine func(T, T) (T, error)) (T, error) {
	var zero T

	parts, err := d.run(ctx)
	if err != nil {
		return zero, err
	}

	partials := make([]T, len(parts))
	filled := make([]bool, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.flow.parallelism)
	for pi, part := range parts {
		if len(part) == 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			acc := part[0]
			for _, item := range part[1:] {
				var err error
				acc, err = combine(acc, item)
				if err != nil {
					return err
				}
			}
			partials[pi] = acc
			filled[pi] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	var acc T
	have := false
	for pi, ok := range filled {
		if !ok {
			continue
		}
		if !have {
			acc = partials[pi]
			have = true
			continue
		}
		acc, err = combine(acc, partials[pi])
		if err != nil {
			return zero, err
		}
	}
	if !have {
		return zero, ErrEmptyDataset
	}
	return acc, nil
}
