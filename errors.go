package flowgo

import "errors"

var (
	// ErrEmptyDataset is returned by aggregations that need at least one
	// element, such as Reduce.
	ErrEmptyDataset = errors.New("flowgo: dataset is empty")

	// ErrNotEnoughItems is returned by Sample when the dataset holds fewer
	// items than requested.
	ErrNotEnoughItems = errors.New("flowgo: not enough items to sample")

	// ErrInvalidSampleSize is returned by Sample when n is not positive.
	ErrInvalidSampleSize = errors.New("flowgo: sample size must be positive")
)
