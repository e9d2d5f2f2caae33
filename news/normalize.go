package news

import (
	"strings"

	"newsdesk/config"
	"newsdesk/types"
)

// tagVocabulary is the fixed set of tags matched against title+description.
var tagVocabulary = []string{
	"ai", "machine learning", "software", "cloud", "cybersecurity", "chips",
	"startup", "apps", "hardware", "open source",
	"stocks", "markets", "investing", "banking", "crypto", "bitcoin",
	"earnings", "fintech", "economy", "rates", "etf", "regulation",
}

var financeKeywords = []string{
	"stock", "market", "invest", "bank", "fed", "rate", "inflation",
	"earnings", "crypto", "bitcoin", "etf", "bond", "fund", "economy",
	"finance", "dollar", "trading", "revenue",
}

var techKeywords = []string{
	"tech", "software", "ai", "artificial intelligence", "chip", "cloud",
	"startup", "app", "cyber", "data", "developer", "open source", "robot",
	"device", "platform", "computing",
}

// extractTags returns every vocabulary tag present in the title or description.
func extractTags(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	var tags []string
	for _, tag := range tagVocabulary {
		if strings.Contains(text, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// deriveCategory assigns a category by counting keyword hits in the text,
// falling back to the source category's default when neither side wins.
func deriveCategory(text, fallback string) string {
	lower := strings.ToLower(text)

	finance := 0
	for _, kw := range financeKeywords {
		if strings.Contains(lower, kw) {
			finance++
		}
	}
	tech := 0
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			tech++
		}
	}

	switch {
	case finance > tech:
		return types.CategoryFinance
	case tech > finance:
		return types.CategoryTechnology
	default:
		return fallback
	}
}

// defaultCategory maps a source category to a valid post category.
func defaultCategory(source string) string {
	switch source {
	case SourceTechnology:
		return types.CategoryTechnology
	case SourceFinance, SourceBusiness:
		return types.CategoryFinance
	default:
		return types.CategoryGeneral
	}
}

// calculateReadTime estimates reading minutes from a word count, minimum 1.
func calculateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / config.WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// normalizeArticle converts a raw article into a BlogPost. sourceCategory is
// the category of the fetcher that produced the article, not necessarily the
// category the post ends up with.
func normalizeArticle(a types.NewsArticle, sourceCategory string) types.BlogPost {
	content := a.Content
	if content == "" {
		content = a.Description
	}

	return types.BlogPost{
		ID:          types.GenerateID(a.URL),
		Title:       a.Title,
		Description: a.Description,
		Content:     content,
		Category:    deriveCategory(a.Title+" "+a.Description, defaultCategory(sourceCategory)),
		Tags:        extractTags(a.Title, a.Description),
		ImageURL:    a.URLToImage,
		PublishedAt: a.PublishedAt,
		Author:      a.Author,
		Source:      a.Source.Name,
		SourceURL:   a.URL,
		ReadTime:    calculateReadTime(content),
	}
}
