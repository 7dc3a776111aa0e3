package kmeans

import (
	"context"
	"sort"
	"testing"

	"github.com/hupe1980/flowgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	model, err := NewModel(2, 2, 5, []Point{{0, 0.5}, {10, 0.5}})
	require.NoError(t, err)
	return model
}

func TestNewModelValidation(t *testing.T) {
	_, err := NewModel(2, 2, 1, nil)
	assert.ErrorIs(t, err, ErrNoCentroids)

	_, err = NewModel(3, 2, 1, []Point{{0, 0}})
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestModelAccessors(t *testing.T) {
	model := newTestModel(t)

	assert.Equal(t, 2, model.Dimensions())
	assert.Equal(t, 2, model.NumClusters())
	assert.Equal(t, 5, model.Iterations())
	assert.Equal(t, []Point{{0, 0.5}, {10, 0.5}}, model.Centroids())
}

func TestModelCentroidsAreCopies(t *testing.T) {
	model := newTestModel(t)

	centroids := model.Centroids()
	centroids[0][0] = 1e9

	assert.Equal(t, []Point{{0, 0.5}, {10, 0.5}}, model.Centroids())
}

func TestClassifyDeterministicAndIdempotent(t *testing.T) {
	model := newTestModel(t)
	p := Point{3, 3}

	first, err := model.Classify(p)
	require.NoError(t, err)
	for range 10 {
		id, err := model.Classify(p)
		require.NoError(t, err)
		assert.Equal(t, first, id)
	}
}

func TestClassifyTieBreak(t *testing.T) {
	model, err := NewModel(2, 2, 1, []Point{{0, 0}, {2, 0}})
	require.NoError(t, err)

	// Exactly equidistant: the lower cluster id wins.
	id, err := model.Classify(Point{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, id)
}

func TestClassifyDimensionMismatch(t *testing.T) {
	model := newTestModel(t)

	_, err := model.Classify(Point{1, 2, 3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)

	_, err = model.ComputeCost(Point{1})
	assert.ErrorAs(t, err, &dm)
}

func TestComputeCost(t *testing.T) {
	model := newTestModel(t)

	cost, err := model.ComputeCost(Point{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, cost, 1e-12)
}

// The dataset cost is exactly the sum of the per-point costs.
func TestComputeCostDatasetIdentity(t *testing.T) {
	ctx := context.Background()
	flow := flowgo.New(flowgo.WithParallelism(3))
	model := newTestModel(t)

	pts := []Point{{0, 0}, {0, 1}, {10, 0}, {10, 1}, {5, 5}}
	dataset := flowgo.FromSlice(flow, pts)

	var sum float64
	for _, p := range pts {
		c, err := model.ComputeCost(p)
		require.NoError(t, err)
		sum += c
	}

	total, err := model.ComputeCostDataset(ctx, dataset)
	require.NoError(t, err)
	assert.InDelta(t, sum, total, 1e-9)
}

func TestComputeCostDatasetEmpty(t *testing.T) {
	ctx := context.Background()
	flow := flowgo.New()
	model := newTestModel(t)

	total, err := model.ComputeCostDataset(ctx, flowgo.FromSlice(flow, []Point{}))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestClassifyDataset(t *testing.T) {
	ctx := context.Background()
	flow := flowgo.New(flowgo.WithParallelism(2))
	model := newTestModel(t)

	ids, err := model.ClassifyDataset(flowgo.FromSlice(flow, []Point{
		{0, 0}, {10, 1}, {1, 1}, {9, 0},
	})).AllGather(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, ids)
}

func TestClassifyPairs(t *testing.T) {
	ctx := context.Background()
	flow := flowgo.New(flowgo.WithParallelism(2))
	model := newTestModel(t)

	pairs, err := model.ClassifyPairs(flowgo.FromSlice(flow, []Point{
		{0, 0}, {10, 1},
	})).AllGather(ctx)
	require.NoError(t, err)

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ClusterID < pairs[j].ClusterID })
	assert.Equal(t, []PointClusterID{
		{Point: Point{0, 0}, ClusterID: 0},
		{Point: Point{10, 1}, ClusterID: 1},
	}, pairs)
}
