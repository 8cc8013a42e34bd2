package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"meetpoint-service/internal/api/dto"
	"meetpoint-service/internal/lib/geo"
	"meetpoint-service/internal/lib/suggest"
	"meetpoint-service/internal/services"
)

// Messages the client contract depends on verbatim
const (
	msgMissingLocations = "Current user location and friend locations are required"
	msgMissingAPIKey    = "Gemini API key not configured"
)

// TriangulateHandler serves POST /api/v1/triangulate
type TriangulateHandler struct {
	Service          *services.TriangulationService
	APIKeyConfigured bool
	Logger           *zap.Logger
}

// Triangulate validates the inbound body, runs the triangulation pipeline,
// and maps the result onto the wire contract.
func (h *TriangulateHandler) Triangulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TriangulateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Logger, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.CurrentUserLocation == nil || len(req.FriendLocations) == 0 {
		writeError(w, r, h.Logger, http.StatusBadRequest, msgMissingLocations)
		return
	}

	kind, ok := parseConversationType(req.ConversationType)
	if !ok {
		writeError(w, r, h.Logger, http.StatusBadRequest, `conversationType must be "direct" or "group"`)
		return
	}

	// Config problem, not a client problem; checked before any AI work
	if !h.APIKeyConfigured {
		h.Logger.Error("triangulate called without AI credentials configured")
		writeError(w, r, h.Logger, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	svcReq := services.TriangulationRequest{
		Requester:    toPoint(*req.CurrentUserLocation),
		Participants: toParticipants(req.FriendLocations),
		Kind:         kind,
		GroupID:      req.GroupID,
	}

	result, err := h.Service.Triangulate(r.Context(), svcReq)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("triangulation failed", zap.Error(err))
		writeErrorDetails(w, r, h.Logger, http.StatusInternalServerError,
			"Failed to triangulate meeting point", err.Error())
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.TriangulateResponse{
		Success: true,
		Result:  toResultDTO(result),
	})
}

func parseConversationType(s string) (suggest.ConversationKind, bool) {
	switch s {
	case "direct":
		return suggest.KindDirect, true
	case "group":
		return suggest.KindGroup, true
	default:
		return "", false
	}
}

func toPoint(loc dto.Location) geo.Point {
	return geo.Point{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
		Timestamp: loc.Timestamp,
		Address:   loc.Address,
	}
}

func toParticipants(friends []dto.UserLocation) []services.Participant {
	participants := make([]services.Participant, len(friends))
	for i, f := range friends {
		p := services.Participant{
			ParticipantID: f.UserID,
			Coordinate:    toPoint(f.Location),
		}
		if f.LastUpdated != nil {
			p.LastUpdated = *f.LastUpdated
		}
		participants[i] = p
	}
	return participants
}

func toResultDTO(result *services.TriangulationResult) dto.TriangulateResult {
	return dto.TriangulateResult{
		MeetingPoint: dto.Location{
			Latitude:  result.MeetingPoint.Latitude,
			Longitude: result.MeetingPoint.Longitude,
			Timestamp: result.MeetingPoint.Timestamp,
			Address:   result.MeetingPoint.Address,
		},
		Suggestions:         result.Suggestions,
		Distance:            result.DistanceKm,
		EstimatedTravelTime: result.EstimatedTravelTimeMinutes,
		OutlierFiltering: dto.OutlierFiltering{
			Enabled:            result.OutlierFiltering.Enabled,
			OutliersRemoved:    result.OutlierFiltering.OutliersRemoved,
			OriginalPointCount: result.OutlierFiltering.OriginalPointCount,
			FilteredPointCount: result.OutlierFiltering.FilteredPointCount,
			OutlierThreshold:   result.OutlierFiltering.OutlierThreshold,
		},
		Source: result.Source,
	}
}
