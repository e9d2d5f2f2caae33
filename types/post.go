package types

// Post categories. Every normalized post carries exactly one of these.
const (
	CategoryTechnology = "technology"
	CategoryFinance    = "finance"
	CategoryGeneral    = "general"
)

// BlogPost is the normalized article representation used across the site.
// Posts are built fresh on every aggregation pass and never persisted;
// Content and ReadTime may be rewritten once during single-article expansion.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	PublishedAt string   `json:"publishedAt"`
	Author      string   `json:"author"`
	Source      string   `json:"source"`
	SourceURL   string   `json:"sourceUrl"`
	ReadTime    int      `json:"readTime"`
}
