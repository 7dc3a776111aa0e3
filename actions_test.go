package flowgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleIsSubsetWithoutReplacement(t *testing.T) {
	ctx := context.Background()
	flow := New(WithParallelism(4))

	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	d := FromSlice(flow, items)

	sample, err := d.Sample(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sample, 10)

	seen := make(map[int]bool)
	for _, v := range sample {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 50)
		assert.False(t, seen[v], "sampled %d twice", v)
		seen[v] = true
	}
}

func TestSampleDeterministicUnderSeed(t *testing.T) {
	ctx := context.Background()

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	s1, err := FromSlice(New(WithSeed(7), WithParallelism(3)), items).Sample(ctx, 5)
	require.NoError(t, err)
	s2, err := FromSlice(New(WithSeed(7), WithParallelism(3)), items).Sample(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
}

func TestSampleErrors(t *testing.T) {
	ctx := context.Background()
	flow := New()

	d := FromSlice(flow, []int{1, 2, 3})

	_, err := d.Sample(ctx, 5)
	assert.ErrorIs(t, err, ErrNotEnoughItems)

	_, err = d.Sample(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleSize)
}

func TestSampleWholeDataset(t *testing.T) {
	ctx := context.Background()
	flow := New(WithParallelism(2))

	d := FromSlice(flow, []int{4, 5, 6})

	sample, err := d.Sample(ctx, 3)
	require.NoError(t, err)
	// Sample preserves dataset order.
	assert.Equal(t, []int{4, 5, 6}, sample)
}

func TestReduceSum(t *testing.T) {
	ctx := context.Background()

	for _, parallelism := range []int{1, 3, 8} {
		flow := New(WithParallelism(parallelism))
		d := FromSlice(flow, []int{1, 2, 3, 4, 5})

		sum, err := Reduce(ctx, d, func(a, b int) (int, error) { return a + b, nil })
		require.NoError(t, err)
		assert.Equal(t, 15, sum, "parallelism=%d", parallelism)
	}
}

func TestReduceSingleElement(t *testing.T) {
	ctx := context.Background()
	flow := New(WithParallelism(4))

	out, err := Reduce(ctx, FromSlice(flow, []int{42}), func(a, b int) (int, error) { return a + b, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestReduceEmpty(t *testing.T) {
	ctx := context.Background()
	flow := New()

	_, err := Reduce(ctx, FromSlice(flow, []int{}), func(a, b int) (int, error) { return a + b, nil })
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
