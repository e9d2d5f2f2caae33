package news

import (
	"context"
	"log"
	"strings"
	"sync"

	"newsdesk/config"
	"newsdesk/types"

	readability "github.com/go-shiori/go-readability"
)

// lookupCategories is the candidate pool refetched on every ID lookup.
var lookupCategories = []string{
	SourceTechnology, SourceFinance, SourceBusiness, SourceTrending,
}

type rawCandidate struct {
	article  types.NewsArticle
	category string
}

// GetArticleByID refetches the candidate pool, regenerates each candidate's ID
// and returns the first match. A miss falls back to searching the mixed feed;
// a post that is still missing yields (nil, nil), not an error.
func (s *Service) GetArticleByID(ctx context.Context, id string) (*types.BlogPost, error) {
	for _, cand := range s.fetchLookupPool(ctx) {
		if types.GenerateID(cand.article.URL) != id {
			continue
		}
		post := normalizeArticle(cand.article, cand.category)
		s.expandContent(&post, cand.article)
		return &post, nil
	}

	// Miss: the post may only exist in the mixed feed (e.g. general sources).
	for _, p := range s.GetMixedNews(ctx, config.SnapshotPoolSize) {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, nil
}

// fetchLookupPool concurrently pulls raw articles for every lookup category.
func (s *Service) fetchLookupPool(ctx context.Context) []rawCandidate {
	results := make([][]rawCandidate, len(lookupCategories))
	var wg sync.WaitGroup
	for i, category := range lookupCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()
			raw := s.fetchRaw(ctx, category, config.LookupPoolPerCategory)
			cands := make([]rawCandidate, 0, len(raw))
			for _, a := range raw {
				cands = append(cands, rawCandidate{article: a, category: category})
			}
			results[i] = cands
		}(i, category)
	}
	wg.Wait()

	var pool []rawCandidate
	for _, cands := range results {
		pool = append(pool, cands...)
	}
	return pool
}

// expandContent enriches a single post for the article page. When enabled, it
// first tries full-content extraction from the source URL; otherwise, short
// content gets a synthesized key-points section. ReadTime is recomputed.
func (s *Service) expandContent(post *types.BlogPost, raw types.NewsArticle) {
	if s.extract {
		extracted, err := readability.FromURL(raw.URL, config.ExtractorTimeout)
		if err != nil {
			log.Printf("content extraction failed for %s: %v", raw.URL, err)
		} else if len(extracted.TextContent) > len(post.Content) {
			post.Content = extracted.TextContent
			if post.ImageURL == "" {
				post.ImageURL = extracted.Image
			}
			if post.Author == "" {
				post.Author = extracted.Byline
			}
			post.ReadTime = calculateReadTime(post.Content)
			return
		}
	}

	if len(post.Content) < config.ShortContentThreshold {
		points := extractKeyPoints(post.Title + ". " + post.Description)
		if len(points) > 0 {
			var b strings.Builder
			b.WriteString(post.Content)
			b.WriteString("\n\nKey Points:\n")
			for _, pt := range points {
				b.WriteString("- ")
				b.WriteString(pt)
				b.WriteString("\n")
			}
			post.Content = b.String()
		}
	}
	post.ReadTime = calculateReadTime(post.Content)
}
