package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"trendwire/internal/app"
	"trendwire/internal/config"
	"trendwire/pkg/news"
)

func main() {
	hoursBack := flag.Int("hours", 72, "lookback window in hours")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	app.SetupLogging(os.Stderr, cfg.LogLevel)

	articles := news.NewRSSAggregator(cfg.Feeds).Fetch(context.Background(), *hoursBack)

	if len(articles) == 0 {
		slog.Info("no articles in lookback window, exiting", "hours_back", *hoursBack)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(articles); err != nil {
		log.Fatalf("error writing articles: %v", err)
	}

	slog.Info("fetch complete", "articles", len(articles), "feeds", len(cfg.Feeds))
}
