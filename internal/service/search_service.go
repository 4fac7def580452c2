package service

import (
	"context"
	"time"

	"chat-agent-service/internal/search"
	"chat-agent-service/internal/storage"

	"go.uber.org/zap"
)

// searchService handles direct web searches, fronted by the result
// cache when one is available
type searchService struct {
	client   search.Client
	cache    storage.SearchCache // Can be nil if caching is not available
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSearchService creates a new search service with injected dependencies
func NewSearchService(
	client search.Client,
	cache storage.SearchCache, // Can be nil
	logger *zap.Logger,
	cacheTTL time.Duration,
) SearchService {
	return &searchService{
		client:   client,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// ------------------------------------------------------------------------------------------------------
// ProcessSearch runs a web search. count defaults when non-positive.
func (s *searchService) ProcessSearch(ctx context.Context, query string, count int) ([]search.Result, error) {
	req := SearchRequest{Query: query, Count: count}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if count <= 0 {
		count = search.DefaultResultCount
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, query, count)
		if err != nil {
			s.logger.Warn("Search cache lookup failed", zap.Error(err))
		} else if found {
			searchRequestsTotal.WithLabelValues("cache").Inc()
			s.logger.Info("Search served from cache",
				zap.String("query", query),
				zap.Int("results", len(cached)),
			)
			return cached, nil
		}
	}

	results, err := s.client.Search(ctx, query, count)
	if err != nil {
		return nil, err
	}

	searchRequestsTotal.WithLabelValues("live").Inc()
	s.logger.Info("Search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, count, results, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache search results", zap.Error(err))
		}
	}

	return results, nil
}
