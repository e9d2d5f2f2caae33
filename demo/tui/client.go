package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"newsdesk/types"
)

// APIClient is a thin HTTP client for the newsdesk API.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the given server base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type postsResponse struct {
	Posts []types.BlogPost `json:"posts"`
	Count int              `json:"count"`
}

// GetArticles fetches the mixed feed.
func (c *APIClient) GetArticles(limit int) ([]types.BlogPost, error) {
	var resp postsResponse
	if err := c.getJSON(fmt.Sprintf("/api/articles?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// GetArticle fetches one article with expanded content.
func (c *APIClient) GetArticle(id string) (*types.BlogPost, error) {
	var post types.BlogPost
	if err := c.getJSON("/api/articles/"+id, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Search runs a relevance query.
func (c *APIClient) Search(query string) ([]types.BlogPost, error) {
	var resp postsResponse
	if err := c.getJSON("/api/search?q="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

func (c *APIClient) getJSON(path string, out interface{}) error {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
