package config

import "time"

// Aggregation constants
const (
	// DefaultFeedLimit is the number of posts returned when no limit is given
	DefaultFeedLimit = 12

	// LookupPoolPerCategory is the per-category fetch size for ID lookups
	LookupPoolPerCategory = 50

	// WordsPerMinute is the reading speed used for read-time estimates
	WordsPerMinute = 200

	// ShortContentThreshold is the content length (chars) below which the
	// single-article path synthesizes a key-points section
	ShortContentThreshold = 500
)

// Search constants
const (
	// SnapshotTTL is how long the search layer reuses an aggregated post list
	SnapshotTTL = 5 * time.Minute

	// SnapshotPoolSize is how many posts the search snapshot holds
	SnapshotPoolSize = 50

	// MaxSuggestions caps the number of autocomplete suggestions
	MaxSuggestions = 8
)

// Newsletter constants
const (
	// RateLimitMax is the number of subscribe requests allowed per window
	RateLimitMax = 5

	// RateLimitWindow is the fixed rate-limit window per client IP
	RateLimitWindow = 15 * time.Minute
)

// External service constants
const (
	// NewsAPIBaseURL is the base URL of the external news API
	NewsAPIBaseURL = "https://newsapi.org/v2"

	// NewsAPITimeout bounds each external news API call
	NewsAPITimeout = 10 * time.Second

	// ExtractorTimeout bounds full-content extraction on the lookup path
	ExtractorTimeout = 30 * time.Second
)
