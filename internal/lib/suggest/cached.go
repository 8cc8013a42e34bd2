package suggest

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SuggestionCache is the caching interface the decorator needs.
// The in-memory cache in internal/cache satisfies it.
type SuggestionCache interface {
	Set(key string, data interface{}, ttl time.Duration, source string) error
	Get(key string, result interface{}) (bool, error)
}

// CachedSuggester wraps a Suggester with content-based caching so repeated
// triangulations over the same participant set reuse one model call.
// Errors from the inner suggester are never cached.
type CachedSuggester struct {
	inner  Suggester
	cache  SuggestionCache
	hasher *RequestHasher
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSuggester creates a suggester with content-based caching
func NewCachedSuggester(inner Suggester, cache SuggestionCache, ttl time.Duration, logger *zap.Logger) *CachedSuggester {
	return &CachedSuggester{
		inner:  inner,
		cache:  cache,
		hasher: NewRequestHasher(),
		ttl:    ttl,
		logger: logger,
	}
}

// SuggestMeetingPoint checks the cache first, then delegates to the
// underlying suggester and caches a successful result. Cache failures never
// fail the request.
func (c *CachedSuggester) SuggestMeetingPoint(ctx context.Context, req SuggestionRequest) (SuggestionResult, error) {
	key := "suggest:" + c.hasher.HashRequest(req)

	var cached SuggestionResult
	if found, err := c.cache.Get(key, &cached); err == nil && found {
		c.logger.Debug("suggestion cache hit", zap.String("key", key[:16]))
		return cached, nil
	}

	result, err := c.inner.SuggestMeetingPoint(ctx, req)
	if err != nil {
		return result, err
	}

	if err := c.cache.Set(key, result, c.ttl, "suggest"); err != nil {
		c.logger.Warn("failed to cache suggestion result", zap.Error(err))
	}

	return result, nil
}
