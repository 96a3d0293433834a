package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"
	"trendwire/db"
	"trendwire/internal/app"
	"trendwire/internal/config"
	"trendwire/internal/handler"
	"trendwire/internal/ratelimit"
	"trendwire/internal/repository"
	"trendwire/internal/trends"
	"trendwire/pkg/llm"
	"trendwire/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	app.SetupLogging(os.Stdout, cfg.LogLevel)

	completer, err := app.NewCompleter(cfg.LLM)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}
	gateway := llm.NewGateway(completer)

	source := news.NewRSSAggregator(cfg.Feeds)
	service := trends.NewService(source, gateway, cfg.BatchPause)

	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	if cfg.RedisURL != "" {
		err = db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		limiter = ratelimit.NewRedisLimiter(db.Redis, cfg.RateLimit.RequestsPerMinute, time.Minute)
		slog.Info("using Redis rate limiter")
	}

	var runRepo *repository.RunRepository
	var database handler.Pinger
	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		runRepo = repository.NewRunRepository(db.DB)
		service.WithRunRecorder(runRepo)
		database = runRepo
	}

	trendHandler := handler.NewTrendHandler(service)

	healthHandler := handler.NewHealthHandler(gateway.Provider(), database)

	r := gin.New()
	r.Use(gin.Logger(), handler.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	limited := handler.RateLimit(limiter)

	r.GET("/", healthHandler.GetHealth)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/trends", limited, trendHandler.GetTrends)
	r.GET("/get-trends", limited, trendHandler.GetTrends)

	if runRepo != nil {
		runHandler := handler.NewRunHandler(runRepo)
		r.GET("/runs", runHandler.GetRuns)
	}

	slog.Info("starting server", "port", cfg.Port, "provider", gateway.Provider(), "feeds", len(cfg.Feeds))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
