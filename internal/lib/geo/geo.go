package geo

import (
	"errors"
	"math"
)

// Earth's mean radius in kilometers
const earthRadiusKm = 6371.0

// ErrNoPoints is returned when a calculation requires at least one coordinate
var ErrNoPoints = errors.New("no points provided")

// Haversine calculates the great-circle distance between two points in
// kilometers. Coordinates are not validated here; out-of-range inputs
// produce whatever the math produces. Validate at the boundary with Valid.
func Haversine(a, b Point) float64 {
	// Identical points are exactly zero, skip the trig
	if a.Latitude == b.Latitude && a.Longitude == b.Longitude {
		return 0
	}

	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Center computes the geographic center as the arithmetic mean of latitudes
// and longitudes. This is a planar approximation, not a spherical centroid;
// at city scale the difference is negligible.
func Center(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNoPoints
	}

	if len(points) == 1 {
		return points[0], nil
	}

	var totalLat, totalLon float64
	for _, p := range points {
		totalLat += p.Latitude
		totalLon += p.Longitude
	}

	return Point{
		Latitude:  totalLat / float64(len(points)),
		Longitude: totalLon / float64(len(points)),
	}, nil
}

// Valid reports whether the point's latitude and longitude are in range
func Valid(p Point) bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// NewPoint creates a Point from latitude and longitude values with validation
func NewPoint(latitude, longitude float64) (Point, error) {
	point := Point{Latitude: latitude, Longitude: longitude}
	if !Valid(point) {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return point, nil
}
