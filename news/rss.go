package news

import (
	"context"
	"fmt"
	"time"

	"newsdesk/types"

	"github.com/mmcdole/gofeed"
)

// categoryFeeds maps source categories to supplemental RSS feeds. Feeds are
// merged into the category's article pool when RSS augmentation is enabled.
var categoryFeeds = map[string][]string{
	SourceTechnology: {
		"https://www.technologyreview.com/feed/",
		"https://hnrss.org/frontpage",
	},
	SourceFinance: {
		"https://feeds.content.dowjones.io/public/rss/mw_topstories",
	},
	SourceBusiness: {
		"https://feeds.bbci.co.uk/news/business/rss.xml",
	},
}

// RSSFetcher pulls supplemental articles from category RSS feeds.
type RSSFetcher struct {
	parser *gofeed.Parser
}

// NewRSSFetcher returns a fetcher backed by a fresh feed parser.
func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

// FetchCategory parses the category's feeds and converts items into raw
// articles. Categories without configured feeds return an empty slice.
func (f *RSSFetcher) FetchCategory(ctx context.Context, category string, limit int) ([]types.NewsArticle, error) {
	feeds := categoryFeeds[category]
	if len(feeds) == 0 {
		return nil, nil
	}

	var articles []types.NewsArticle
	for _, feedURL := range feeds {
		feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return articles, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
		}
		for _, item := range feed.Items {
			if item.Link == "" || item.Title == "" {
				continue
			}
			articles = append(articles, feedItemToArticle(item, feed.Title))
			if len(articles) >= limit {
				return articles, nil
			}
		}
	}
	return articles, nil
}

func feedItemToArticle(item *gofeed.Item, feedTitle string) types.NewsArticle {
	published := ""
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	image := ""
	if item.Image != nil {
		image = item.Image.URL
	}

	return types.NewsArticle{
		Source:      types.NewsSource{Name: feedTitle},
		Author:      author,
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		URLToImage:  image,
		PublishedAt: published,
		Content:     item.Content,
	}
}
