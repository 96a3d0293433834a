package news

import (
	"context"
	"log/slog"
	"time"
	"trendwire/internal/model"
)

type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Aggregator reads every configured client in order. A client that fails is
// logged and skipped so one broken feed never empties the result.
type Aggregator struct {
	clients []NewsClient
	now     func() time.Time
}

func NewAggregator(clients ...NewsClient) *Aggregator {
	return &Aggregator{clients: clients, now: time.Now}
}

func NewRSSAggregator(feeds []Feed) *Aggregator {
	clients := make([]NewsClient, 0, len(feeds))
	for _, f := range feeds {
		clients = append(clients, NewRSSClient(f.Name, f.URL))
	}
	return NewAggregator(clients...)
}

func (a *Aggregator) Fetch(ctx context.Context, hoursBack int) []model.Article {
	since := a.now().Add(-time.Duration(hoursBack) * time.Hour)

	var all []model.Article
	for _, client := range a.clients {
		source := client.Name()

		articles, err := client.Fetch(ctx, since)
		if err != nil {
			slog.Error("error fetching feed", "source", source, "error", err)
			continue
		}

		slog.Info("feed fetched", "source", source, "articles", len(articles))
		all = append(all, articles...)
	}

	slog.Info("fetch complete", "feeds", len(a.clients), "articles", len(all), "hours_back", hoursBack)
	return all
}
