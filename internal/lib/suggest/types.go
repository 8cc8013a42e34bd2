package suggest

import (
	"context"
	"errors"
	"fmt"

	"meetpoint-service/internal/lib/geo"
)

// ConversationKind distinguishes a 1-on-1 chat from a group chat.
// The prompt is phrased differently for each.
type ConversationKind string

const (
	KindDirect ConversationKind = "direct"
	KindGroup  ConversationKind = "group"
)

// SuggestionRequest carries the coordinates a meeting point is computed for.
// Requester is context for the model; Others are the people to meet.
type SuggestionRequest struct {
	Requester geo.Point        `json:"requester"`
	Others    []geo.Point      `json:"others"`
	Kind      ConversationKind `json:"kind"`
}

// SuggestionResult is the parsed model output: a meeting point plus
// human-readable activity suggestions near it.
type SuggestionResult struct {
	MeetingPoint geo.Point `json:"meeting_point"`
	Suggestions  []string  `json:"suggestions"`
}

// Suggester interface defines AI-powered meeting point suggestion
type Suggester interface {
	// Request a meeting point and activity suggestions for the given coordinates
	SuggestMeetingPoint(ctx context.Context, req SuggestionRequest) (SuggestionResult, error)
}

// ErrNotConfigured is returned when no API key was provided
var ErrNotConfigured = errors.New("suggestion client not configured: missing API key")

// ParseError indicates the model response was not the expected JSON
// contract, even after markdown cleanup. It carries the raw response text
// for diagnostics. Callers recover from it with a deterministic fallback;
// it must never reach an end user.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
