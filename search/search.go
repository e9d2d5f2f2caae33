package search

import (
	"sort"
	"strings"
	"unicode"

	"newsdesk/config"
	"newsdesk/types"
)

// Sort keys accepted by SearchPosts.
const (
	SortRelevance = "relevance"
	SortDate      = "date"
	SortTitle     = "title"
)

// minTermLength filters out short query tokens before scoring.
const minTermLength = 2

// SearchPosts scores posts against a free-text query and returns matches with
// a strictly positive score, ordered by the given sort key. category narrows
// candidates to an exact category match; "all" or "" disables the filter.
func SearchPosts(posts []types.BlogPost, query, category, sortKey string) []types.BlogPost {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		post  types.BlogPost
		score int
	}
	var matches []scored
	for _, p := range posts {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if s := scorePost(p, terms); s > 0 {
			matches = append(matches, scored{post: p, score: s})
		}
	}

	switch sortKey {
	case SortDate:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].post.PublishedAt > matches[j].post.PublishedAt
		})
	case SortTitle:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].post.Title < matches[j].post.Title
		})
	default:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})
	}

	out := make([]types.BlogPost, len(matches))
	for i, m := range matches {
		out[i] = m.post
	}
	return out
}

// queryTerms lower-cases the query and keeps tokens longer than two characters.
func queryTerms(query string) []string {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) > minTermLength {
			terms = append(terms, t)
		}
	}
	return terms
}

// scorePost computes the additive relevance score of one post: 10 for a
// title-prefix match, 5 elsewhere in the title, +3 description, +1 content,
// +4 tag, +6 category-name match, summed over all terms.
func scorePost(p types.BlogPost, terms []string) int {
	title := strings.ToLower(p.Title)
	description := strings.ToLower(p.Description)
	content := strings.ToLower(p.Content)
	category := strings.ToLower(p.Category)

	score := 0
	for _, term := range terms {
		if idx := strings.Index(title, term); idx == 0 {
			score += 10
		} else if idx > 0 {
			score += 5
		}
		if strings.Contains(description, term) {
			score += 3
		}
		if strings.Contains(content, term) {
			score += 1
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				score += 4
				break
			}
		}
		if strings.Contains(category, term) {
			score += 6
		}
	}
	return score
}

// Suggestions collects up to MaxSuggestions unique alphabetic words from
// titles, tags, and categories whose lowercase form contains the query.
func Suggestions(posts []types.BlogPost, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	consider := func(word string) bool {
		w := strings.ToLower(word)
		if !isAlphabetic(w) || seen[w] || !strings.Contains(w, q) {
			return false
		}
		seen[w] = true
		out = append(out, w)
		return len(out) >= config.MaxSuggestions
	}

	for _, p := range posts {
		for _, word := range strings.Fields(p.Title) {
			if consider(word) {
				return out
			}
		}
		for _, tag := range p.Tags {
			if consider(tag) {
				return out
			}
		}
		if consider(p.Category) {
			return out
		}
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RelatedPosts ranks candidates by pairwise similarity to post: +5 for the
// same category, +2 per shared tag, +1 per shared title word longer than
// three characters. The post itself is excluded; top n are returned.
func RelatedPosts(posts []types.BlogPost, post types.BlogPost, n int) []types.BlogPost {
	type scored struct {
		post  types.BlogPost
		score int
	}

	postTags := make(map[string]bool, len(post.Tags))
	for _, t := range post.Tags {
		postTags[strings.ToLower(t)] = true
	}
	postWords := significantTitleWords(post.Title)

	var matches []scored
	for _, cand := range posts {
		if cand.ID == post.ID {
			continue
		}
		score := 0
		if cand.Category == post.Category {
			score += 5
		}
		for _, t := range cand.Tags {
			if postTags[strings.ToLower(t)] {
				score += 2
			}
		}
		for w := range significantTitleWords(cand.Title) {
			if postWords[w] {
				score += 1
			}
		}
		if score > 0 {
			matches = append(matches, scored{post: cand, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]types.BlogPost, len(matches))
	for i, m := range matches {
		out[i] = m.post
	}
	return out
}

func significantTitleWords(title string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if len(w) > 3 {
			words[w] = true
		}
	}
	return words
}
