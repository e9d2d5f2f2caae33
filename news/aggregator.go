package news

import (
	"context"
	"log"
	"sort"
	"sync"

	"newsdesk/config"
	"newsdesk/types"
)

// mixedCategories is the fan-out set for the mixed feed.
var mixedCategories = []string{
	SourceTechnology, SourceFinance, SourceGeneral, SourceBusiness, SourceTrending,
}

// Service aggregates articles from the external news API, supplemental RSS
// feeds, and the demo fixtures into normalized posts.
type Service struct {
	client  *Client     // nil when no API key is configured
	rss     *RSSFetcher // nil when RSS augmentation is disabled
	extract bool        // full-content extraction on the lookup path
}

// NewService wires an aggregator. client and rss may be nil.
func NewService(client *Client, rss *RSSFetcher, extract bool) *Service {
	return &Service{client: client, rss: rss, extract: extract}
}

// GetMixedNews fans out to all source categories concurrently, normalizes and
// deduplicates the results, and returns up to limit posts sorted newest first.
// Upstream failures degrade to fixture data; the call itself never fails.
func (s *Service) GetMixedNews(ctx context.Context, limit int) []types.BlogPost {
	if limit <= 0 {
		limit = config.DefaultFeedLimit
	}
	perCategory := (limit + len(mixedCategories) - 1) / len(mixedCategories)

	results := make([][]types.BlogPost, len(mixedCategories))
	var wg sync.WaitGroup
	for i, category := range mixedCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()
			raw := s.fetchRaw(ctx, category, perCategory)
			posts := make([]types.BlogPost, 0, len(raw))
			for _, a := range raw {
				posts = append(posts, normalizeArticle(a, category))
			}
			results[i] = posts
		}(i, category)
	}
	wg.Wait()

	var merged []types.BlogPost
	for _, posts := range results {
		merged = append(merged, posts...)
	}

	// If every category came back empty, serve the full demo dataset.
	if len(merged) == 0 {
		for _, a := range allDemoArticles() {
			merged = append(merged, normalizeArticle(a, SourceGeneral))
		}
	}

	merged = dedupPosts(merged)
	sortByPublishedDesc(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// fetchRaw returns raw articles for one category. API failures are logged and
// degrade to fixtures; RSS failures degrade to whatever the API returned.
func (s *Service) fetchRaw(ctx context.Context, category string, limit int) []types.NewsArticle {
	var articles []types.NewsArticle

	if s.client != nil {
		fetched, err := s.client.FetchCategory(ctx, category, limit)
		if err != nil {
			log.Printf("news API fetch failed for %s: %v (falling back to fixtures)", category, err)
		} else {
			articles = fetched
		}
	}
	if articles == nil {
		articles = demoArticles(category, 0, limit)
	}

	if s.rss != nil {
		extra, err := s.rss.FetchCategory(ctx, category, limit)
		if err != nil {
			log.Printf("RSS fetch failed for %s: %v", category, err)
		}
		articles = append(articles, extra...)
	}

	return articles
}

// dedupPosts removes any post whose source URL or title repeats an earlier
// entry. First occurrence wins.
func dedupPosts(posts []types.BlogPost) []types.BlogPost {
	seenURL := make(map[string]bool, len(posts))
	seenTitle := make(map[string]bool, len(posts))
	out := posts[:0]
	for _, p := range posts {
		if seenURL[p.SourceURL] || seenTitle[p.Title] {
			continue
		}
		seenURL[p.SourceURL] = true
		seenTitle[p.Title] = true
		out = append(out, p)
	}
	return out
}

// sortByPublishedDesc orders posts newest first. Timestamps are RFC3339
// strings, so a string comparison gives chronological order.
func sortByPublishedDesc(posts []types.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt > posts[j].PublishedAt
	})
}
