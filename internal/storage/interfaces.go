package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"chat-agent-service/internal/search"
)

// SearchCache defines the interface for caching web search results
type SearchCache interface {
	Get(ctx context.Context, query string, count int) ([]search.Result, bool, error)
	Set(ctx context.Context, query string, count int, results []search.Result, ttl time.Duration) error
	Close() error
}

// ------------------------------------------------------------------------------------------------------
// cacheKey generates a stable cache key for a query/count pair
func cacheKey(query string, count int) string {
	data, _ := json.Marshal(struct {
		Query string `json:"query"`
		Count int    `json:"count"`
	}{query, count})
	hash := sha256.Sum256(data)
	return fmt.Sprintf("websearch:%s", hex.EncodeToString(hash[:]))
}
