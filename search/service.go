package search

import (
	"context"
	"sync"
	"time"

	"newsdesk/config"
	"newsdesk/types"
)

// Aggregator is the slice of the news service the search layer depends on.
type Aggregator interface {
	GetMixedNews(ctx context.Context, limit int) []types.BlogPost
}

// Service owns a time-boxed snapshot of the aggregated post list and answers
// search, suggestion, and related-post queries against it. The snapshot is
// refreshed when older than the TTL, independently of the aggregator's own
// per-call behavior.
type Service struct {
	agg      Aggregator
	poolSize int
	ttl      time.Duration

	mu        sync.Mutex
	posts     []types.BlogPost
	fetchedAt time.Time

	now func() time.Time
}

// NewService returns a search service over the given aggregator.
func NewService(agg Aggregator) *Service {
	return &Service{
		agg:      agg,
		poolSize: config.SnapshotPoolSize,
		ttl:      config.SnapshotTTL,
		now:      time.Now,
	}
}

// snapshot returns the cached post list, refetching if it has gone stale.
func (s *Service) snapshot(ctx context.Context) []types.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.posts == nil || s.now().Sub(s.fetchedAt) > s.ttl {
		s.posts = s.agg.GetMixedNews(ctx, s.poolSize)
		s.fetchedAt = s.now()
	}
	return s.posts
}

// Refresh discards the snapshot and refetches immediately.
func (s *Service) Refresh(ctx context.Context) []types.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = s.agg.GetMixedNews(ctx, s.poolSize)
	s.fetchedAt = s.now()
	return s.posts
}

// Search runs a relevance query against the current snapshot.
func (s *Service) Search(ctx context.Context, query, category, sortKey string) []types.BlogPost {
	return SearchPosts(s.snapshot(ctx), query, category, sortKey)
}

// Suggest returns autocomplete suggestions from the current snapshot.
func (s *Service) Suggest(ctx context.Context, query string) []string {
	return Suggestions(s.snapshot(ctx), query)
}

// Related returns the n posts most similar to the post with the given ID, or
// nil when the ID is not in the snapshot.
func (s *Service) Related(ctx context.Context, id string, n int) []types.BlogPost {
	posts := s.snapshot(ctx)
	for _, p := range posts {
		if p.ID == id {
			return RelatedPosts(posts, p, n)
		}
	}
	return nil
}
