package dto

import "time"

// Wire shapes for the triangulate endpoint. Field names match the client
// contract and are decoupled from the service types on purpose: the inbound
// body is untrusted and goes through an explicit parse/validate step.

// Location is a coordinate as it appears on the wire
type Location struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Address   string     `json:"address,omitempty"`
}

// UserLocation pairs a participant with their last known coordinate
type UserLocation struct {
	UserID      string     `json:"userId"`
	Location    Location   `json:"location"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// TriangulateRequest is the inbound request body.
// CurrentUserLocation is a pointer so a missing field is distinguishable
// from the zero coordinate.
type TriangulateRequest struct {
	CurrentUserLocation *Location      `json:"currentUserLocation"`
	FriendLocations     []UserLocation `json:"friendLocations"`
	GroupID             string         `json:"groupId,omitempty"`
	ConversationType    string         `json:"conversationType"`
}

// OutlierFiltering reports what the outlier filter did
type OutlierFiltering struct {
	Enabled            bool    `json:"enabled"`
	OutliersRemoved    int     `json:"outliersRemoved"`
	OriginalPointCount int     `json:"originalPointCount"`
	FilteredPointCount int     `json:"filteredPointCount"`
	OutlierThreshold   float64 `json:"outlierThreshold"`
}

// TriangulateResult is the result payload returned to the caller
type TriangulateResult struct {
	MeetingPoint        Location         `json:"meetingPoint"`
	Suggestions         []string         `json:"suggestions"`
	Distance            float64          `json:"distance"`
	EstimatedTravelTime int              `json:"estimatedTravelTime"`
	OutlierFiltering    OutlierFiltering `json:"outlierFiltering"`
	Source              string           `json:"source"`
}

// TriangulateResponse wraps a successful triangulation
type TriangulateResponse struct {
	Success bool              `json:"success"`
	Result  TriangulateResult `json:"result"`
}
