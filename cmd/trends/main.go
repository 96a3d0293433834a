package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"trendwire/db"
	"trendwire/internal/app"
	"trendwire/internal/config"
	"trendwire/internal/repository"
	"trendwire/internal/trends"
	"trendwire/pkg/llm"
	"trendwire/pkg/news"
)

func main() {
	hoursBack := flag.Int("hours", 72, "lookback window in hours")
	batchSize := flag.Int("batch", trends.DefaultBatchSize, "articles per analysis batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Logs go to stderr so stdout carries only the report.
	app.SetupLogging(os.Stderr, cfg.LogLevel)

	completer, err := app.NewCompleter(cfg.LLM)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	service := trends.NewService(news.NewRSSAggregator(cfg.Feeds), llm.NewGateway(completer), cfg.BatchPause)

	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		service.WithRunRecorder(repository.NewRunRepository(db.DB))
	}

	report, err := service.Run(context.Background(), trends.Request{HoursBack: *hoursBack, BatchSize: *batchSize})
	if err != nil {
		if errors.Is(err, trends.ErrNoPreliminaryTrends) || errors.Is(err, trends.ErrNoReport) {
			slog.Error("no trend report produced", "error", err)
		} else {
			slog.Error("error running trend analysis", "error", err)
		}
		db.Close()
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("error writing report: %v", err)
	}

	slog.Info("trend report written", "trends", len(report.Trends), "articles", report.ArticleCount)
}
