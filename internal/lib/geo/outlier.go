package geo

import "math"

// FilterOutliers removes points that are statistically distant from the
// geographic center of the set. A point is an outlier when its distance to
// the center exceeds mean + thresholdStdDev * stddev (population standard
// deviation of the distances).
//
// Removal is a single pass: every point beyond the cutoff is dropped at
// once, not farthest-first. Sets of two or fewer points are returned
// unchanged (not enough spread to judge), and sets of exactly three compute
// the statistics but never act on them, so a triad is never degraded into a
// pair.
func FilterOutliers(points []Point, thresholdStdDev float64) FilterResult {
	if len(points) <= 2 {
		return FilterResult{Filtered: points}
	}

	center, _ := Center(points) // len > 2, cannot fail

	distances := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		distances[i] = Haversine(center, p)
		sum += distances[i]
	}

	mean := sum / float64(len(points))

	var variance float64
	for _, d := range distances {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(points))
	stdDev := math.Sqrt(variance)

	cutoff := mean + thresholdStdDev*stdDev

	outliers := 0
	for _, d := range distances {
		if d > cutoff {
			outliers++
		}
	}

	if outliers == 0 || len(points) <= 3 {
		return FilterResult{Filtered: points}
	}

	filtered := make([]Point, 0, len(points)-outliers)
	for i, p := range points {
		if distances[i] <= cutoff {
			filtered = append(filtered, p)
		}
	}

	return FilterResult{
		Filtered:     filtered,
		RemovedCount: outliers,
	}
}
