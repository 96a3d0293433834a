package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"trendwire/internal/model"

	"github.com/mmcdole/gofeed"
)

const userAgent = "TrendwireBot/1.0"

type RSSClient struct {
	name   string
	url    string
	parser *gofeed.Parser
}

func NewRSSClient(name, url string) *RSSClient {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: 30 * time.Second}

	return &RSSClient{
		name:   name,
		url:    url,
		parser: parser,
	}
}

func (c *RSSClient) Name() string {
	if c.name != "" {
		return c.name
	}
	return c.url
}

// Fetch returns the feed entries published (or, failing that, updated) at or
// after since. Entries carrying neither timestamp are dropped.
func (c *RSSClient) Fetch(ctx context.Context, since time.Time) ([]model.Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch %s: %w", c.url, err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = c.Name()
	}

	articles := make([]model.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		published := item.PublishedParsed
		if published == nil {
			published = item.UpdatedParsed
		}
		if published == nil || published.Before(since) {
			continue
		}

		title := strings.TrimSpace(item.Title)
		summary := strings.TrimSpace(item.Description)
		if summary == "" {
			summary = model.NoSummary
		}

		ts := published.UTC()
		articles = append(articles, model.Article{
			ID:        model.ArticleID(item.Link, title),
			Title:     title,
			Link:      item.Link,
			Summary:   summary,
			Published: &ts,
			Source:    source,
		})
	}

	return articles, nil
}
