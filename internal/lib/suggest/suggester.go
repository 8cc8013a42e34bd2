package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"meetpoint-service/internal/lib/geo"
)

// System prompt for meeting point triangulation. The response contract is
// strict: a single JSON object, optionally fenced, nothing else.
const systemPrompt = `You are a local activity expert helping friends discover exciting activities in their area.

Given a list of participant locations, provide:
1. The optimal central meeting point (latitude, longitude) for activities
2. 6-8 specific, real activities and venues near that center point, covering:
   - Popular restaurants with specific names and cuisine types
   - Entertainment venues (arcades, bowling alleys, escape rooms, etc.)
   - Outdoor activities (parks, hiking trails, sports facilities)
   - Cultural attractions (museums, galleries, theaters, historic sites)
   - Shopping and leisure (malls, markets, bookstores, cafes)
   - Nightlife options (bars, clubs, live music venues)
3. Brief reasoning for why this location and these activities work well for the group

Focus on real, specific venues and activities that exist in the area. Make
suggestions diverse and appealing to different interests. Keep activity
descriptions concise while including venue name, activity type, address, and
one distinguishing feature.

Respond with valid JSON matching exactly this shape:
{
  "meetingPoint": {
    "latitude": number,
    "longitude": number
  },
  "suggestions": [
    "Restaurant: [Name] - [Cuisine] ([key feature]) | [Address]",
    "Entertainment: [Name] - [Activity] ([group appeal]) | [Address]",
    "Outdoor: [Name] - [Activity] ([amenity]) | [Address]",
    "Cultural: [Name] - [Type] ([highlight]) | [Address]",
    "Shopping: [Name] - [Type] ([feature]) | [Address]",
    "Nightlife: [Name] - [Type] ([atmosphere]) | [Address]"
  ],
  "reasoning": "Brief explanation of why this location and activities work well for the group"
}`

// ClientOptions configures the AI suggestion client
type ClientOptions struct {
	APIKey      string
	Model       string
	BaseURL     string // optional, for OpenAI-compatible gateways
	Temperature float32
	MaxTokens   int
}

// openAISuggester implements the Suggester interface using an
// OpenAI-compatible chat completion API
type openAISuggester struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewSuggester creates a Suggester backed by a chat completion model.
// An empty API key yields a suggester whose calls fail with
// ErrNotConfigured, which keeps construction infallible for wiring and
// tests.
func NewSuggester(opts ClientOptions) Suggester {
	s := &openAISuggester{
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}
	if s.temperature == 0 {
		s.temperature = 0.7
	}
	if s.maxTokens == 0 {
		s.maxTokens = 1500
	}

	if opts.APIKey == "" {
		return s
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	s.client = openai.NewClientWithConfig(cfg)
	return s
}

// SuggestMeetingPoint makes a single blocking round trip to the model and
// parses the strict JSON contract out of its response. No retries here; a
// failure is the caller's signal to fall back.
func (s *openAISuggester) SuggestMeetingPoint(ctx context.Context, req SuggestionRequest) (SuggestionResult, error) {
	if s.client == nil {
		return SuggestionResult{}, ErrNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(req),
			},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return SuggestionResult{}, fmt.Errorf("suggestion API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return SuggestionResult{}, errors.New("no response from suggestion API")
	}

	return parseResponse(resp.Choices[0].Message.Content)
}

// buildPrompt renders the participant coordinates into the user message.
// The requester is always Location 1.
func buildPrompt(req SuggestionRequest) string {
	audience := "a group of friends"
	if req.Kind == KindDirect {
		audience = "two friends"
	}

	all := make([]geo.Point, 0, len(req.Others)+1)
	all = append(all, req.Requester)
	all = append(all, req.Others...)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Find a meeting point and activities for %s.\n\nCurrent locations:\n", audience)
	for i, loc := range all {
		fmt.Fprintf(&sb, "Location %d: %v, %v", i+1, loc.Latitude, loc.Longitude)
		if loc.Address != "" {
			fmt.Fprintf(&sb, " (%s)", loc.Address)
		}
		sb.WriteByte('\n')
	}

	return strings.TrimRight(sb.String(), "\n")
}

// aiResponse mirrors the JSON contract the model is instructed to return
type aiResponse struct {
	MeetingPoint *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"meetingPoint"`
	Suggestions []string `json:"suggestions"`
	Reasoning   string   `json:"reasoning"`
}

// parseResponse extracts the JSON contract from raw model output. It either
// returns a fully validated result or a *ParseError carrying the raw text;
// never a partially parsed object.
func parseResponse(raw string) (SuggestionResult, error) {
	cleaned := extractJSON(raw)

	var body aiResponse
	if err := json.Unmarshal([]byte(cleaned), &body); err != nil {
		return SuggestionResult{}, &ParseError{Raw: raw, Err: err}
	}

	if body.MeetingPoint == nil {
		return SuggestionResult{}, &ParseError{Raw: raw, Err: errors.New("response missing meetingPoint")}
	}

	point := geo.Point{
		Latitude:  body.MeetingPoint.Latitude,
		Longitude: body.MeetingPoint.Longitude,
	}
	if !geo.Valid(point) {
		return SuggestionResult{}, &ParseError{Raw: raw, Err: errors.New("meetingPoint coordinates out of range")}
	}

	suggestions := body.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return SuggestionResult{
		MeetingPoint: point,
		Suggestions:  suggestions,
	}, nil
}
