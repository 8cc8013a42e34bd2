package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Phoenix metro cluster plus one distant point (Tucson, ~180 km south).
// Used by several tests below.
var (
	phoenix    = Point{Latitude: 33.4484, Longitude: -112.0740}
	tempeAZ    = Point{Latitude: 33.4255, Longitude: -111.9400}
	scottsAZ   = Point{Latitude: 33.4942, Longitude: -111.9261}
	chandlerAZ = Point{Latitude: 33.3062, Longitude: -111.8413}
	tucsonAZ   = Point{Latitude: 32.2226, Longitude: -110.9747}
)

func TestFilterOutliers_TwoPointsUnchanged(t *testing.T) {
	points := []Point{phoenix, tucsonAZ}

	result := FilterOutliers(points, 1.5)

	// Two points can never be judged against each other
	assert.Equal(t, points, result.Filtered)
	assert.Equal(t, 0, result.RemovedCount)
}

func TestFilterOutliers_EmptyAndSingle(t *testing.T) {
	result := FilterOutliers(nil, 1.5)
	assert.Empty(t, result.Filtered)
	assert.Equal(t, 0, result.RemovedCount)

	result = FilterOutliers([]Point{phoenix}, 1.5)
	assert.Equal(t, []Point{phoenix}, result.Filtered)
	assert.Equal(t, 0, result.RemovedCount)
}

func TestFilterOutliers_ThreePointsNeverReduced(t *testing.T) {
	// One member 300+ km away; statistics run but removal is gated at > 3
	flagstaff := Point{Latitude: 35.1983, Longitude: -111.6513}
	points := []Point{phoenix, tempeAZ, flagstaff}

	result := FilterOutliers(points, 1.5)

	assert.Len(t, result.Filtered, 3, "A triad must never be degraded into a pair")
	assert.Equal(t, 0, result.RemovedCount)
}

func TestFilterOutliers_RemovesDistantPoint(t *testing.T) {
	// Four clustered in the Phoenix metro, one in Tucson
	points := []Point{phoenix, tempeAZ, scottsAZ, chandlerAZ, tucsonAZ}

	result := FilterOutliers(points, 1.5)

	require.Len(t, result.Filtered, 4)
	assert.Equal(t, 1, result.RemovedCount)
	assert.NotContains(t, result.Filtered, tucsonAZ)

	// Survivors keep their original order
	assert.Equal(t, []Point{phoenix, tempeAZ, scottsAZ, chandlerAZ}, result.Filtered)
}

func TestFilterOutliers_TightClusterUntouched(t *testing.T) {
	points := []Point{phoenix, tempeAZ, scottsAZ, chandlerAZ}

	result := FilterOutliers(points, 1.5)

	assert.Equal(t, points, result.Filtered)
	assert.Equal(t, 0, result.RemovedCount)
}

func TestFilterOutliers_SinglePassRemovesAllBeyondCutoff(t *testing.T) {
	// Six tightly clustered points plus two far away in opposite directions.
	// Both distant points exceed the cutoff and must go in one sweep.
	cluster := []Point{
		{Latitude: 33.448, Longitude: -112.074},
		{Latitude: 33.449, Longitude: -112.073},
		{Latitude: 33.450, Longitude: -112.075},
		{Latitude: 33.447, Longitude: -112.072},
		{Latitude: 33.446, Longitude: -112.076},
		{Latitude: 33.451, Longitude: -112.071},
	}
	flagstaff := Point{Latitude: 35.1983, Longitude: -111.6513}
	sonoita := Point{Latitude: 31.7000, Longitude: -112.4500}
	points := append(append([]Point{}, cluster...), flagstaff, sonoita)

	result := FilterOutliers(points, 1.5)

	assert.Equal(t, 2, result.RemovedCount, "Both outliers removed in a single pass, not farthest-first")
	assert.Equal(t, cluster, result.Filtered)
}
