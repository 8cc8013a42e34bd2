package geo

import "time"

// Point represents a geographic coordinate
type Point struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Address   string     `json:"address,omitempty"`
}

// FilterResult holds the survivors of an outlier-filtering pass
type FilterResult struct {
	Filtered     []Point `json:"filtered"`
	RemovedCount int     `json:"removed_count"`
}
