package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trendwire/internal/model"

	"github.com/go-playground/assert/v2"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>World Desk</title>
  <link>https://example.com</link>
  <description>International news</description>
  <item>
    <title>India and US sign trade pact</title>
    <link>https://example.com/trade-pact</link>
    <description>The two countries agreed on tariff cuts.</description>
    <pubDate>Thu, 26 Feb 2026 10:00:00 +0000</pubDate>
  </item>
  <item>
    <title>Old story</title>
    <link>https://example.com/old</link>
    <description>Happened last week.</description>
    <pubDate>Thu, 19 Feb 2026 10:00:00 +0000</pubDate>
  </item>
  <item>
    <title>Undated story</title>
    <link>https://example.com/undated</link>
    <description>No timestamp at all.</description>
  </item>
  <item>
    <title>Defence talks resume</title>
    <link>https://example.com/defence</link>
    <pubDate>Wed, 25 Feb 2026 22:30:00 +0000</pubDate>
  </item>
</channel>
</rss>`

func newTestFeedServer(body string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestRSSFetch(t *testing.T) {
	srv := newTestFeedServer(testFeed, http.StatusOK)
	defer srv.Close()

	client := NewRSSClient("fallback", srv.URL)
	since := time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC)

	articles, err := client.Fetch(context.Background(), since)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "India and US sign trade pact", a.Title)
	assert.Equal(t, "https://example.com/trade-pact", a.Link)
	assert.Equal(t, "The two countries agreed on tariff cuts.", a.Summary)
	assert.Equal(t, "World Desk", a.Source)
	assert.Equal(t, model.ArticleID(a.Link, a.Title), a.ID)
	assert.NotEqual(t, nil, a.Published)
	assert.Equal(t, 26, a.Published.Day())

	assert.Equal(t, "Defence talks resume", articles[1].Title)
	assert.Equal(t, model.NoSummary, articles[1].Summary)
}

func TestRSSFetch_BadFeed(t *testing.T) {
	srv := newTestFeedServer("this is not xml", http.StatusOK)
	defer srv.Close()

	client := NewRSSClient("broken", srv.URL)
	_, err := client.Fetch(context.Background(), time.Time{})

	assert.NotEqual(t, nil, err)
}

func TestRSSClientName(t *testing.T) {
	assert.Equal(t, "The Hindu", NewRSSClient("The Hindu", "https://example.com/rss").Name())
	assert.Equal(t, "https://example.com/rss", NewRSSClient("", "https://example.com/rss").Name())
}
