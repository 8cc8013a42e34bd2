package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Scottsdale to Tempe (real coordinates, ~7.85 km apart)
	scottsdale := Point{Latitude: 33.4942, Longitude: -111.9211}
	tempe := Point{Latitude: 33.4255, Longitude: -111.9404}

	distance := Haversine(scottsdale, tempe)

	assert.InDelta(t, 7.85, distance, 0.05, "Scottsdale to Tempe should be approximately 7.85km")
}

func TestHaversine_IdenticalPoints(t *testing.T) {
	phoenix := Point{Latitude: 33.4484, Longitude: -112.0740}

	assert.Equal(t, 0.0, Haversine(phoenix, phoenix), "Distance from a point to itself must be zero")
}

func TestHaversine_Symmetry(t *testing.T) {
	a := Point{Latitude: 33.4484, Longitude: -112.0740} // Phoenix
	b := Point{Latitude: 32.2226, Longitude: -110.9747} // Tucson

	assert.Equal(t, Haversine(a, b), Haversine(b, a), "Haversine must be symmetric")

	// Phoenix to Tucson is roughly 173 km
	assert.InDelta(t, 173, Haversine(a, b), 3)
}

func TestCenter_EmptyInput(t *testing.T) {
	_, err := Center(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestCenter_SinglePoint(t *testing.T) {
	addr := "111 E Monroe St, Phoenix, AZ"
	p := Point{Latitude: 33.4484, Longitude: -112.0740, Address: addr}

	center, err := Center([]Point{p})
	require.NoError(t, err)

	// A single point is its own center, returned unchanged
	assert.Equal(t, p, center)
	assert.Equal(t, addr, center.Address)
}

func TestCenter_MeanOfCoordinates(t *testing.T) {
	points := []Point{
		{Latitude: 33.4942, Longitude: -111.9211},
		{Latitude: 33.4255, Longitude: -111.9404},
	}

	center, err := Center(points)
	require.NoError(t, err)

	assert.InDelta(t, 33.45985, center.Latitude, 1e-9)
	assert.InDelta(t, -111.93075, center.Longitude, 1e-9)

	// The mean center of two points is equidistant from both
	assert.InDelta(t, Haversine(center, points[0]), Haversine(center, points[1]), 0.001)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Point{Latitude: 33.4484, Longitude: -112.0740}))
	assert.True(t, Valid(Point{Latitude: -90, Longitude: 180}))
	assert.False(t, Valid(Point{Latitude: 90.1, Longitude: 0}))
	assert.False(t, Valid(Point{Latitude: 0, Longitude: -180.5}))
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(33.4484, -112.0740)
	require.NoError(t, err)
	assert.Equal(t, 33.4484, p.Latitude)
	assert.Equal(t, -112.0740, p.Longitude)

	_, err = NewPoint(200, -300)
	assert.Error(t, err, "Should return error for out-of-range coordinates")
}
