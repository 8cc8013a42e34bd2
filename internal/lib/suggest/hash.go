package suggest

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// RequestHasher provides content-based deduplication for suggestion requests
type RequestHasher struct{}

// NewRequestHasher creates a new request hasher
func NewRequestHasher() *RequestHasher {
	return &RequestHasher{}
}

// HashRequest creates a content hash for deduplication. Coordinates are
// rendered at 4 decimal places (~11 m) and the non-requester points are
// sorted, so the same set of participants hashes identically regardless of
// ordering or GPS jitter below that precision.
func (h *RequestHasher) HashRequest(req SuggestionRequest) string {
	others := make([]string, len(req.Others))
	for i, p := range req.Others {
		others[i] = fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
	}
	sort.Strings(others)

	signature := fmt.Sprintf("%s|%.4f,%.4f|%s",
		req.Kind,
		req.Requester.Latitude, req.Requester.Longitude,
		strings.Join(others, ";"),
	)

	hash := sha256.Sum256([]byte(signature))
	return fmt.Sprintf("%x", hash)
}
