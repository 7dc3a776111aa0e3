package flowgo

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// ReduceByKey groups elements by keyFn and folds each group with combine,
// emitting exactly one element per distinct key. combine must be associative
// and commutative: elements of one key are pre-combined within each input
// partition before the cross-partition exchange, and no arrival order is
// guaranteed.
//
// Output elements are spread over partitions by key hash; their order within
// a partition is unspecified.
func ReduceByKey[T any](d *Dataset[T], keyFn func(T) uint64, combine func(T, T) (T, error)) *Dataset[T] {
	return &Dataset[T]{
		flow: d.flow,
		eval: func(ctx context.Context) ([][]T, error) {
			in, err := d.run(ctx)
			if err != nil {
				return nil, err
			}

			// Partition-local pre-combination.
			locals := make([]map[uint64]T, len(in))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(d.flow.parallelism)
			for pi, part := range in {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					local := make(map[uint64]T)
					for _, item := range part {
						k := keyFn(item)
						prev, ok := local[k]
						if !ok {
							local[k] = item
							continue
						}
						merged, err := combine(prev, item)
						if err != nil {
							return err
						}
						local[k] = merged
					}
					locals[pi] = local
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}

			// Exchange: spread keys over output buckets by hash, then merge
			// the locals bucket by bucket.
			numBuckets := d.flow.parallelism
			out := make([][]T, numBuckets)

			g, gctx = errgroup.WithContext(ctx)
			g.SetLimit(d.flow.parallelism)
			for b := 0; b < numBuckets; b++ {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					merged := make(map[uint64]T)
					for _, local := range locals {
						for k, v := range local {
							if keyBucket(k, numBuckets) != b {
								continue
							}
							prev, ok := merged[k]
							if !ok {
								merged[k] = v
								continue
							}
							combined, err := combine(prev, v)
							if err != nil {
								return err
							}
							merged[k] = combined
						}
					}
					bucket := make([]T, 0, len(merged))
					for _, v := range merged {
						bucket = append(bucket, v)
					}
					out[b] = bucket
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

// keyBucket maps a key to an output partition. Keys are re-hashed so that
// dense small keys (cluster ids, ordinals) still spread over buckets.
func keyBucket(key uint64, numBuckets int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return int(xxhash.Sum64(buf[:]) % uint64(numBuckets))
}
