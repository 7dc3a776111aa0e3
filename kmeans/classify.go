package kmeans

// nearest returns the cluster id of the centroid closest to p and the
// squared distance to it. Ties are broken toward the lowest cluster id:
// centroids are scanned in id order and only a strictly smaller distance
// replaces the current choice. This makes classification deterministic,
// including for duplicate centroids.
//
// nearest is a pure function of p and the explicit centroid snapshot; one
// classification pass must use exactly one snapshot throughout.
func nearest(p Point, centroids []Point) (int, float64, error) {
	minDist, err := p.SquaredDistance(centroids[0])
	if err != nil {
		return 0, 0, err
	}
	closest := 0

	for i := 1; i < len(centroids); i++ {
		dist, err := p.SquaredDistance(centroids[i])
		if err != nil {
			return 0, 0, err
		}
		if dist < minDist {
			minDist = dist
			closest = i
		}
	}
	return closest, minDist, nil
}
