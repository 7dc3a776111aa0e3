package kmeans

import (
	"slices"

	"github.com/hupe1980/flowgo/internal/vecmath"
)

// Point is a fixed-dimension real vector. All points taking part in one
// clustering run must share the same dimension; operations on mismatched
// operands fail with *ErrDimensionMismatch.
//
// Point operations are pure: they never mutate their receiver or operand,
// so points are safe for unlimited concurrent read use.
type Point []float64

// Dimension returns the number of components.
func (p Point) Dimension() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return Point(slices.Clone(p))
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) (Point, error) {
	if len(p) != len(other) {
		return nil, &ErrDimensionMismatch{Expected: len(p), Actual: len(other)}
	}
	return Point(vecmath.Add(p, other)), nil
}

// ScaleDivide returns p with every component divided by s.
func (p Point) ScaleDivide(s float64) Point {
	return Point(vecmath.Scale(p, 1/s))
}

// SquaredDistance returns the squared Euclidean distance between p and other.
func (p Point) SquaredDistance(other Point) (float64, error) {
	if len(p) != len(other) {
		return 0, &ErrDimensionMismatch{Expected: len(p), Actual: len(other)}
	}
	return vecmath.SquaredL2(p, other), nil
}

// clonePoints deep-copies a centroid list. Used for the per-iteration
// broadcast so classification never observes a shared mutable snapshot.
func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Clone()
	}
	return out
}
