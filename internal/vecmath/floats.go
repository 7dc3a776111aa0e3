// Package vecmath provides float64 vector kernels for the clustering
// packages. This is an internal package - external users should use the
// kmeans Point operations.
package vecmath

// Add returns the component-wise sum of a and b.
// Assumes slices are the same length (caller's responsibility).
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Scale returns a with all elements multiplied by scalar.
// Assumes the caller wants a fresh slice.
func Scale(a []float64, scalar float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * scalar
	}
	return out
}

// SquaredL2 calculates the squared L2 (Euclidean) distance.
// Assumes slices are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}
	return distance
}
