package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetpoint-service/internal/lib/geo"
)

// countingSuggester records calls and returns a canned result or error
type countingSuggester struct {
	calls  int
	result SuggestionResult
	err    error
}

func (s *countingSuggester) SuggestMeetingPoint(ctx context.Context, req SuggestionRequest) (SuggestionResult, error) {
	s.calls++
	return s.result, s.err
}

// mapCache is a minimal SuggestionCache for tests
type mapCache struct {
	entries map[string][]byte
	setErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Set(key string, data interface{}, ttl time.Duration, source string) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) Get(key string, result interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func testRequest() SuggestionRequest {
	return SuggestionRequest{
		Requester: geo.Point{Latitude: 33.4942, Longitude: -111.9211},
		Others:    []geo.Point{{Latitude: 33.4255, Longitude: -111.9404}},
		Kind:      KindDirect,
	}
}

func TestCachedSuggester_SecondCallServedFromCache(t *testing.T) {
	inner := &countingSuggester{
		result: SuggestionResult{
			MeetingPoint: geo.Point{Latitude: 33.4599, Longitude: -111.9307},
			Suggestions:  []string{"Outdoor: Papago Park - Hiking (easy trails) | Phoenix, AZ"},
		},
	}
	cached := NewCachedSuggester(inner, newMapCache(), time.Hour, zap.NewNop())
	ctx := context.Background()

	first, err := cached.SuggestMeetingPoint(ctx, testRequest())
	require.NoError(t, err)

	second, err := cached.SuggestMeetingPoint(ctx, testRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "Second identical request must not hit the model")
	assert.Equal(t, first, second)
}

func TestCachedSuggester_ErrorsNotCached(t *testing.T) {
	inner := &countingSuggester{err: errors.New("provider unavailable")}
	cached := NewCachedSuggester(inner, newMapCache(), time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := cached.SuggestMeetingPoint(ctx, testRequest())
	require.Error(t, err)

	_, err = cached.SuggestMeetingPoint(ctx, testRequest())
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls, "Failed calls must retry the model, not a cached error")
}

func TestCachedSuggester_CacheFailureDoesNotFailRequest(t *testing.T) {
	inner := &countingSuggester{
		result: SuggestionResult{MeetingPoint: geo.Point{Latitude: 33.0, Longitude: -112.0}, Suggestions: []string{}},
	}
	failing := newMapCache()
	failing.setErr = errors.New("cache write failed")
	cached := NewCachedSuggester(inner, failing, time.Hour, zap.NewNop())

	result, err := cached.SuggestMeetingPoint(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, inner.result, result)
}
