package kmeans

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/flowgo"
)

// PointClusterID pairs a point with its assigned cluster id.
type PointClusterID struct {
	Point     Point
	ClusterID int
}

// Model is the immutable result of a k-means training run. All queries are
// pure and safe for unlimited concurrent use.
//
// Under DropEmptyClusters the centroid list can be shorter than
// NumClusters(): NumClusters reports the configured k, Centroids the
// clusters that survived.
type Model struct {
	dimensions  int
	numClusters int
	iterations  int
	centroids   []Point
}

// NewModel constructs a model from a final centroid list. The centroids are
// cloned; the caller keeps ownership of its slice.
func NewModel(dimensions, numClusters, iterations int, centroids []Point) (*Model, error) {
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	for _, c := range centroids {
		if c.Dimension() != dimensions {
			return nil, &ErrDimensionMismatch{Expected: dimensions, Actual: c.Dimension()}
		}
	}

	return &Model{
		dimensions:  dimensions,
		numClusters: numClusters,
		iterations:  iterations,
		centroids:   clonePoints(centroids),
	}, nil
}

// Dimensions returns the dimension of the clustered space.
func (m *Model) Dimensions() int { return m.dimensions }

// NumClusters returns the configured cluster count k.
func (m *Model) NumClusters() int { return m.numClusters }

// Iterations returns the number of iterations the model was trained for.
func (m *Model) Iterations() int { return m.iterations }

// Centroids returns a copy of the final centroids in cluster id order.
func (m *Model) Centroids() []Point { return clonePoints(m.centroids) }

// Classify returns the id of the centroid closest to p. Ties are broken
// toward the lowest cluster id.
func (m *Model) Classify(p Point) (int, error) {
	id, _, err := m.nearest(p)
	return id, err
}

// ComputeCost returns the squared distance from p to its nearest centroid.
func (m *Model) ComputeCost(p Point) (float64, error) {
	_, dist, err := m.nearest(p)
	return dist, err
}

func (m *Model) nearest(p Point) (int, float64, error) {
	if p.Dimension() != m.dimensions {
		return 0, 0, &ErrDimensionMismatch{Expected: m.dimensions, Actual: p.Dimension()}
	}
	return nearest(p, m.centroids)
}

// ClassifyDataset lazily classifies every point, producing a dataset of
// cluster ids.
func (m *Model) ClassifyDataset(points *flowgo.Dataset[Point]) *flowgo.Dataset[int] {
	return flowgo.Map(points, m.Classify)
}

// ClassifyPairs lazily classifies every point, producing a dataset of
// point/cluster-id pairs.
func (m *Model) ClassifyPairs(points *flowgo.Dataset[Point]) *flowgo.Dataset[PointClusterID] {
	return flowgo.Map(points, func(p Point) (PointClusterID, error) {
		id, _, err := m.nearest(p)
		if err != nil {
			return PointClusterID{}, err
		}
		return PointClusterID{Point: p, ClusterID: id}, nil
	})
}

// ComputeCostDataset returns the overall k-means cost of the dataset: the
// sum of squared distances from each point to its nearest centroid. An empty
// dataset has cost 0.
func (m *Model) ComputeCostDataset(ctx context.Context, points *flowgo.Dataset[Point]) (float64, error) {
	costs := flowgo.Map(points, m.ComputeCost)

	total, err := flowgo.Reduce(ctx, costs, func(a, b float64) (float64, error) {
		return a + b, nil
	})
	if errors.Is(err, flowgo.ErrEmptyDataset) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("compute cost: %w", err)
	}
	return total, nil
}
