package model

import "time"

const (
	RunStatusCompleted  = "completed"
	RunStatusNoArticles = "no_articles"
	RunStatusNoTrends   = "no_trends"
	RunStatusNoReport   = "no_report"
)

type Run struct {
	ID               int64
	HoursBack        int
	BatchSize        int
	ArticleCount     int
	BatchCount       int
	PreliminaryCount int
	TrendCount       int
	Status           string
	ErrorMessage     string
	DurationMS       int64
	CreatedAt        time.Time
}
