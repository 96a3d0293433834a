package model

import "time"

type PreliminaryTrend struct {
	TrendName        string   `json:"trend_name"`
	RelevantArticles []string `json:"relevant_articles"`
}

type FinalTrend struct {
	TrendName        string   `json:"trend_name"`
	Explanation      string   `json:"explanation"`
	RelevantArticles []string `json:"relevant_articles"`
}

type EnrichedTrend struct {
	TrendName        string    `json:"trend_name"`
	Explanation      string    `json:"explanation"`
	RelevantArticles []Article `json:"relevant_articles"`
}

type Report struct {
	Trends           []EnrichedTrend `json:"trends"`
	ArticleCount     int             `json:"article_count"`
	PreliminaryCount int             `json:"preliminary_count"`
	HoursBack        int             `json:"hours_back"`
	BatchSize        int             `json:"batch_size"`
	GeneratedAt      time.Time       `json:"generated_at"`
}
