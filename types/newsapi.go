package types

// NewsAPIResponse is the envelope returned by the external news API.
type NewsAPIResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

// NewsArticle is a raw article as delivered by the news API, before
// normalization into a BlogPost.
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Content     string     `json:"content"`
}

// NewsSource identifies the upstream outlet of a raw article.
type NewsSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
