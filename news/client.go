package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"newsdesk/config"
	"newsdesk/types"
)

// Source categories the aggregator fans out to. Only the first three are
// valid BlogPost categories; business and trending are folded into
// finance/general during normalization.
const (
	SourceTechnology = "technology"
	SourceFinance    = "finance"
	SourceGeneral    = "general"
	SourceBusiness   = "business"
	SourceTrending   = "trending"
)

// categoryQueries maps a source category to the keyword query sent upstream.
var categoryQueries = map[string]string{
	SourceTechnology: `technology OR "artificial intelligence" OR software OR startup`,
	SourceFinance:    `finance OR "stock market" OR investing OR banking`,
	SourceGeneral:    `world OR economy OR science`,
	SourceBusiness:   `business OR earnings OR markets`,
	SourceTrending:   `breaking OR trending`,
}

// Client calls the external news API. A nil *Client means "not configured"
// and callers fall back to the demo fixtures.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient returns a news API client, or nil when apiKey is empty.
func NewClient(apiKey string) *Client {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: config.NewsAPIBaseURL,
		http:    &http.Client{Timeout: config.NewsAPITimeout},
	}
}

// FetchCategory queries the news API for one source category.
func (c *Client) FetchCategory(ctx context.Context, category string, limit int) ([]types.NewsArticle, error) {
	q, ok := categoryQueries[category]
	if !ok {
		q = category
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("page", "1")
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news API request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("news API returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed types.NewsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode news API response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("news API status %q", parsed.Status)
	}

	// The API reports removed articles with placeholder fields; skip them.
	articles := make([]types.NewsArticle, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		if a.URL == "" || a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}
