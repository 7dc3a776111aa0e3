package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when the dataset holds fewer points
	// than the requested number of clusters. Raised before any iteration.
	ErrInsufficientData = errors.New("kmeans: fewer points than clusters")

	// ErrInvalidNumClusters is returned when numClusters is not positive.
	ErrInvalidNumClusters = errors.New("kmeans: numClusters must be positive")

	// ErrInvalidDimensions is returned when dimensions is not positive.
	ErrInvalidDimensions = errors.New("kmeans: dimensions must be positive")

	// ErrInvalidIterations is returned when iterations is negative.
	ErrInvalidIterations = errors.New("kmeans: iterations must not be negative")

	// ErrNoCentroids is returned when a model would hold no centroids.
	ErrNoCentroids = errors.New("kmeans: model has no centroids")

	// ErrInitialCentroids is returned when explicitly supplied initial
	// centroids do not match numClusters.
	ErrInitialCentroids = errors.New("kmeans: initial centroids do not match numClusters")
)

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("kmeans: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
