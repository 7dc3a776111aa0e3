package kmeans

// CentroidAccumulator is a running sum of points plus the number of points
// folded into it. Invariant: Sum equals the component-wise sum of exactly
// Count points. Accumulators start as singletons (Count == 1) at
// classification time and grow only through Combine, which produces a new
// value rather than mutating in place.
type CentroidAccumulator struct {
	Sum   Point
	Count int64
}

// Combine merges two accumulators of the same cluster. It is associative
// and commutative, so partial pre-combination on any partition before the
// cross-partition exchange yields the same result.
func (a CentroidAccumulator) Combine(b CentroidAccumulator) (CentroidAccumulator, error) {
	sum, err := a.Sum.Add(b.Sum)
	if err != nil {
		return CentroidAccumulator{}, err
	}
	return CentroidAccumulator{Sum: sum, Count: a.Count + b.Count}, nil
}

// Mean returns the average of the accumulated points: the new centroid.
func (a CentroidAccumulator) Mean() Point {
	return a.Sum.ScaleDivide(float64(a.Count))
}

// ClusterAssignment pairs a cluster id with the singleton (or partially
// combined) accumulator of points assigned to it. Produced by
// classification, consumed by the per-cluster reduction.
type ClusterAssignment struct {
	ClusterID int
	Center    CentroidAccumulator
}

// combineAssignments merges two assignments with the same cluster id.
func combineAssignments(a, b ClusterAssignment) (ClusterAssignment, error) {
	center, err := a.Center.Combine(b.Center)
	if err != nil {
		return ClusterAssignment{}, err
	}
	return ClusterAssignment{ClusterID: a.ClusterID, Center: center}, nil
}
