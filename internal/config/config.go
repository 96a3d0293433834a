package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"trendwire/pkg/news"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFeeds covers Indian, US and regional outlets reporting on India-US affairs.
var DefaultFeeds = []news.Feed{
	{Name: "The Hindu - International", URL: "https://www.thehindu.com/news/international/feeder/default.rss"},
	{Name: "Zee News - India", URL: "https://zeenews.india.com/rss/india-national-news.xml"},
	{Name: "Times of India - US", URL: "https://timesofindia.indiatimes.com/rssfeeds/7098551.cms"},
	{Name: "BBC News - Asia", URL: "https://feeds.bbci.co.uk/news/world/asia/rss.xml"},
	{Name: "Reuters - World", URL: "https://www.reuters.com/news/archive/worldNews"},
	{Name: "CFR - South Asia", URL: "https://www.cfr.org/rss/region/south-asia"},
}

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    slog.Level

	LLM LLMConfig

	Feeds      []news.Feed
	BatchPause time.Duration

	DatabaseURL string
	RedisURL    string

	RateLimit RateLimitConfig
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type feedsFile struct {
	Feeds []news.Feed `yaml:"feeds"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    parseLevel(os.Getenv("LOG_LEVEL")),
		BatchPause:  time.Duration(getEnvInt("BATCH_PAUSE_SECONDS", 10)) * time.Second,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvInt("RATE_LIMIT_RPM", 10),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 2),
		},
		Feeds: DefaultFeeds,
	}

	cfg.LLM = loadLLMConfig()

	if path := os.Getenv("FEEDS_FILE"); path != "" {
		feeds, err := LoadFeeds(path)
		if err != nil {
			return nil, err
		}
		cfg.Feeds = feeds
	}

	return cfg, nil
}

func loadLLMConfig() LLMConfig {
	cfg := LLMConfig{
		Provider: strings.ToLower(getEnv("LLM_PROVIDER", "groq")),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}

	switch cfg.Provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case "groq":
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}
	return cfg
}

// Validate is only needed by commands that talk to the model.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "groq":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}

	if c.APIKey == "" {
		return fmt.Errorf("no API key configured for LLM provider %q", c.Provider)
	}
	return nil
}

// LoadFeeds reads a YAML feed list of the form `feeds: [{name, url}]`.
func LoadFeeds(path string) ([]news.Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	var f feedsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feeds file: %w", err)
	}

	feeds := make([]news.Feed, 0, len(f.Feeds))
	for _, feed := range f.Feeds {
		if strings.TrimSpace(feed.URL) == "" {
			continue
		}
		feeds = append(feeds, feed)
	}
	if len(feeds) == 0 {
		return nil, fmt.Errorf("feeds file %s lists no feeds", path)
	}
	return feeds, nil
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", defaultValue)
		return defaultValue
	}
	return parsed
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
