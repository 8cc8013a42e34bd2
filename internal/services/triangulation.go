package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"meetpoint-service/internal/config"
	"meetpoint-service/internal/lib/geo"
	"meetpoint-service/internal/lib/suggest"
)

// ErrInvalidRequest indicates missing or malformed required request fields
var ErrInvalidRequest = errors.New("invalid triangulation request")

// Result sources: whether suggestions came from the model or the
// deterministic fallback table.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Participant is one non-requesting member of a conversation
type Participant struct {
	ParticipantID string    `json:"participant_id"`
	Coordinate    geo.Point `json:"coordinate"`
	LastUpdated   time.Time `json:"last_updated"`
}

// TriangulationRequest is the validated input to the triangulation pipeline
type TriangulationRequest struct {
	Requester    geo.Point
	Participants []Participant
	Kind         suggest.ConversationKind
	GroupID      string
}

// OutlierFilterReport records what the outlier filter did for one call
type OutlierFilterReport struct {
	Enabled            bool    `json:"enabled"`
	OutliersRemoved    int     `json:"outliersRemoved"`
	OriginalPointCount int     `json:"originalPointCount"`
	FilteredPointCount int     `json:"filteredPointCount"`
	OutlierThreshold   float64 `json:"outlierThreshold"`
}

// TriangulationResult is the assembled outcome of one triangulation call.
// Constructed once, never mutated, owned by the caller.
type TriangulationResult struct {
	MeetingPoint               geo.Point
	Suggestions                []string
	DistanceKm                 float64
	EstimatedTravelTimeMinutes int
	OutlierFiltering           OutlierFilterReport
	Source                     string
}

// TriangulationService computes fair meeting points among conversation
// participants. Stateless between calls; safe for concurrent use.
type TriangulationService struct {
	suggester suggest.Suggester
	config    *config.TriangulationConfig
	logger    *zap.Logger
}

// NewTriangulationService creates a new TriangulationService
func NewTriangulationService(suggester suggest.Suggester, cfg *config.TriangulationConfig, logger *zap.Logger) *TriangulationService {
	return &TriangulationService{
		suggester: suggester,
		config:    cfg,
		logger:    logger,
	}
}

// Triangulate runs the full pipeline: validate, filter outliers, ask the
// model for a meeting point and suggestions, and derive distance metrics.
// AI failures degrade to the fallback suggestion set; they never fail the
// call.
func (s *TriangulationService) Triangulate(ctx context.Context, req TriangulationRequest) (*TriangulationResult, error) {
	if !geo.Valid(req.Requester) {
		return nil, fmt.Errorf("%w: requester coordinate missing or out of range", ErrInvalidRequest)
	}
	if len(req.Participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant location is required", ErrInvalidRequest)
	}

	all := make([]geo.Point, 0, len(req.Participants)+1)
	all = append(all, req.Requester)
	for _, p := range req.Participants {
		all = append(all, p.Coordinate)
	}

	threshold := s.config.OutlierThreshold

	// Outlier filtering only runs for groups of 4+ points; smaller sets
	// have too little spread to judge.
	filtered := all
	report := OutlierFilterReport{
		OriginalPointCount: len(all),
		FilteredPointCount: len(all),
		OutlierThreshold:   threshold,
	}
	if len(all) >= 4 {
		filterResult := geo.FilterOutliers(all, threshold)
		filtered = filterResult.Filtered
		report.Enabled = true
		report.OutliersRemoved = filterResult.RemovedCount
		report.FilteredPointCount = len(filterResult.Filtered)

		if filterResult.RemovedCount > 0 {
			s.logger.Info("removed outliers from triangulation",
				zap.Int("removed", filterResult.RemovedCount),
				zap.Int("original", len(all)),
			)
		}
	}

	// The requester is context for the model, not a friend to meet
	others := excludeRequester(filtered, req.Requester)

	meetingPoint, suggestions, source, err := s.resolveSuggestions(ctx, req, filtered, others)
	if err != nil {
		return nil, err
	}

	var maxDistance float64
	for _, p := range filtered {
		if d := geo.Haversine(meetingPoint, p); d > maxDistance {
			maxDistance = d
		}
	}
	distanceKm := math.Round(maxDistance*100) / 100

	now := time.Now()
	meetingPoint.Timestamp = &now

	return &TriangulationResult{
		MeetingPoint:               meetingPoint,
		Suggestions:                suggestions,
		DistanceKm:                 distanceKm,
		EstimatedTravelTimeMinutes: int(math.Round(distanceKm * s.config.TravelMinutesPerKm)),
		OutlierFiltering:           report,
		Source:                     source,
	}, nil
}

// resolveSuggestions asks the model for a meeting point and falls back to
// the geographic center plus the fixed suggestion table on any failure.
// The fallback path is the last line of defense and must not fail.
func (s *TriangulationService) resolveSuggestions(ctx context.Context, req TriangulationRequest, filtered, others []geo.Point) (geo.Point, []string, string, error) {
	result, err := s.suggester.SuggestMeetingPoint(ctx, suggest.SuggestionRequest{
		Requester: req.Requester,
		Others:    others,
		Kind:      req.Kind,
	})
	if err == nil {
		return result.MeetingPoint, result.Suggestions, SourceAI, nil
	}

	var parseErr *suggest.ParseError
	if errors.As(err, &parseErr) {
		s.logger.Warn("AI response unparseable, using fallback suggestions",
			zap.Error(parseErr.Err),
			zap.String("raw_response", parseErr.Raw),
		)
	} else {
		s.logger.Warn("suggestion client failed, using fallback suggestions", zap.Error(err))
	}

	center, cerr := geo.Center(filtered)
	if cerr != nil {
		// Unreachable after validation; a bug upstream, not a degraded path
		return geo.Point{}, nil, "", fmt.Errorf("computing fallback center: %w", cerr)
	}

	suggestions := make([]string, len(suggest.FallbackSuggestions))
	copy(suggestions, suggest.FallbackSuggestions)

	return center, suggestions, SourceFallback, nil
}

// excludeRequester drops the requester's own coordinate from the filtered
// set by value comparison on latitude and longitude
func excludeRequester(points []geo.Point, requester geo.Point) []geo.Point {
	others := make([]geo.Point, 0, len(points))
	for _, p := range points {
		if p.Latitude == requester.Latitude && p.Longitude == requester.Longitude {
			continue
		}
		others = append(others, p)
	}
	return others
}
